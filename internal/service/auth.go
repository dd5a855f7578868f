// Package service provides the business logic for ModGoviya authentication.
//
// Services receive *ent.Client and never manage transactions themselves;
// single-record updates rely on store-level atomic operations instead.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/facebook"
	"modgoviya.io/modgoviya/internal/auth/lockout"
	"modgoviya.io/modgoviya/internal/auth/oidc"
	"modgoviya.io/modgoviya/internal/auth/password"
	"modgoviya.io/modgoviya/internal/auth/token"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
	"modgoviya.io/modgoviya/internal/pkg/worker"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// selfServiceRoles are the account types a visitor may register as.
// extension_officer and admin are assigned administratively.
var selfServiceRoles = map[string]user.Role{
	"farmer": user.RoleFarmer,
	"trader": user.RoleTrader,
	"buyer":  user.RoleBuyer,
}

// GoogleVerifier validates Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, rawToken string) (*oidc.Claims, error)
}

// FacebookClient resolves Facebook access tokens to profiles.
type FacebookClient interface {
	Profile(ctx context.Context, accessToken string) (*facebook.Profile, error)
}

// AuthService is the authentication gateway: local credentials, OAuth
// sign-in, password lifecycle, and session token issuance.
type AuthService struct {
	client   *ent.Client
	hasher   *password.Hasher
	policy   lockout.Policy
	issuer   *token.Issuer
	google   GoogleVerifier
	facebook FacebookClient
	pools    *worker.Pools

	resetTokenTTL        time.Duration
	verificationTokenTTL time.Duration

	now func() time.Time
}

// Options configures an AuthService. Google, Facebook, and Pools are
// optional; the corresponding features are disabled when nil.
type Options struct {
	Hasher               *password.Hasher
	Policy               lockout.Policy
	Issuer               *token.Issuer
	Google               GoogleVerifier
	Facebook             FacebookClient
	Pools                *worker.Pools
	ResetTokenTTL        time.Duration
	VerificationTokenTTL time.Duration

	// Clock is an injectable time source for tests.
	Clock func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *ent.Client, opts Options) *AuthService {
	if opts.Hasher == nil {
		opts.Hasher = password.NewHasher(password.DefaultCost)
	}
	if opts.Policy.MaxAttempts == 0 {
		opts.Policy = lockout.DefaultPolicy()
	}
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = 10 * time.Minute
	}
	if opts.VerificationTokenTTL <= 0 {
		opts.VerificationTokenTTL = 24 * time.Hour
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &AuthService{
		client:               client,
		hasher:               opts.Hasher,
		policy:               opts.Policy,
		issuer:               opts.Issuer,
		google:               opts.Google,
		facebook:             opts.Facebook,
		pools:                opts.Pools,
		resetTokenTTL:        opts.ResetTokenTTL,
		verificationTokenTTL: opts.VerificationTokenTTL,
		now:                  opts.Clock,
	}
}

// UserSummary is the public projection of an account returned with
// session tokens.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// AuthResult is a successful authentication: a session token and the
// account it identifies.
type AuthResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email         string
	FullName      string
	Password      string
	Role          string
	AcceptedTerms bool
}

// Register creates a local account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)

	var fieldErrs []apperrors.FieldError
	if !emailPattern.MatchString(email) {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "email", Code: "invalid", Message: "valid email is required"})
	}
	if fullName == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fullName", Code: "required", Message: "full name is required"})
	}
	if !in.AcceptedTerms {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "acceptedTerms", Code: "required", Message: "terms must be accepted"})
	}
	role := user.RoleFarmer
	if in.Role != "" {
		r, ok := selfServiceRoles[in.Role]
		if !ok {
			fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "role", Code: "invalid", Message: "role must be farmer, trader, or buyer"})
		} else {
			role = r
		}
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "registration request is invalid").
			WithFieldErrors(fieldErrs)
	}

	if err := password.Validate(in.Password); err != nil {
		return nil, apperrors.ErrWeakPassword(err.Error())
	}

	// Advisory pre-check; the unique index is the race-safe guard.
	exists, err := s.client.User.Query().Where(user.EmailEQ(email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail()
	}

	hash, err := s.hashPassword(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.client.User.Create().
		SetID(newID()).
		SetEmail(email).
		SetFullName(fullName).
		SetPasswordHash(hash).
		SetAuthProvider(user.AuthProviderLocal).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrDuplicateEmail()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("User registered",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return s.issueFor(u)
}

// Login authenticates a local account by email and password.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	now := s.now()

	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Indistinguishable from a wrong password.
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	state := lockout.State{Attempts: u.LoginAttempts, LockUntil: u.LockUntil}
	if state.Locked(now) {
		return nil, apperrors.ErrAccountLocked()
	}
	if !u.IsActive {
		return nil, apperrors.ErrAccountDeactivated()
	}

	// Federated accounts carry no local password.
	if u.PasswordHash == "" {
		if err := s.recordFailure(ctx, u, state, now); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrInvalidCredentials()
	}

	if err := s.verifyPassword(ctx, plaintext, u.PasswordHash); err != nil {
		if err := s.recordFailure(ctx, u, state, now); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrInvalidCredentials()
	}

	u, err = u.Update().
		SetLoginAttempts(0).
		ClearLockUntil().
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record successful login: %w", err)
	}

	return s.issueFor(u)
}

// recordFailure persists the lockout transition for one failed attempt.
// The counter update is an atomic store-level increment except when an
// expired lock is being reprocessed, which restarts the count at 1.
func (s *AuthService) recordFailure(ctx context.Context, u *ent.User, state lockout.State, now time.Time) error {
	next := s.policy.OnFailure(state, now)
	upd := u.Update()

	expiredLock := u.LockUntil != nil && !u.LockUntil.After(now)
	if expiredLock {
		upd.SetLoginAttempts(next.Attempts).ClearLockUntil()
	} else {
		upd.AddLoginAttempts(1)
	}
	if next.LockUntil != nil {
		upd.SetLockUntil(*next.LockUntil)
		logger.Warn("Account locked after repeated failed logins",
			zap.String("user_id", u.ID),
			zap.Time("lock_until", *next.LockUntil),
		)
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("record failed login: %w", err)
	}
	return nil
}

// CurrentUser fetches the account for an authenticated subject.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *AuthService) issueFor(u *ent.User) (*AuthResult, error) {
	signed, expiresAt, err := s.issuer.Issue(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &AuthResult{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      Summarize(u),
	}, nil
}

// Summarize projects an account onto its public summary.
func Summarize(u *ent.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		Verified: u.IsVerified,
	}
}

// NormalizeEmail lower-cases and trims an email so lookups and the unique
// index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword runs bcrypt on the crypto pool so a burst of registrations
// cannot monopolize request goroutines.
func (s *AuthService) hashPassword(ctx context.Context, plaintext string) (string, error) {
	var (
		hash    string
		hashErr error
	)
	if err := s.runCrypto(ctx, func() {
		hash, hashErr = s.hasher.Hash(plaintext)
	}); err != nil {
		return "", err
	}
	if hashErr != nil {
		return "", apperrors.ErrWeakPassword(hashErr.Error())
	}
	return hash, nil
}

func (s *AuthService) verifyPassword(ctx context.Context, plaintext, hash string) error {
	var verifyErr error
	if err := s.runCrypto(ctx, func() {
		verifyErr = s.hasher.Verify(plaintext, hash)
	}); err != nil {
		return err
	}
	return verifyErr
}

func (s *AuthService) runCrypto(ctx context.Context, fn func()) error {
	if s.pools == nil {
		fn()
		return nil
	}
	return s.pools.Crypto.Run(ctx, func(context.Context) { fn() })
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
