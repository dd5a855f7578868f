package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/password"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
)

const resetTokenBytes = 32

// IssuedToken is a freshly generated single-use token. The raw value goes
// to the mailer exactly once; only its hash is stored.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// ChangePassword replaces the local password after verifying the current
// one. It neither consults nor resets lockout counters; only login does.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return fmt.Errorf("get user: %w", err)
	}

	if u.PasswordHash == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed,
			"account signs in through an external provider and has no password")
	}

	if err := s.verifyPassword(ctx, currentPassword, u.PasswordHash); err != nil {
		return apperrors.ErrInvalidCredentials()
	}

	if err := password.Validate(newPassword); err != nil {
		return apperrors.ErrWeakPassword(err.Error())
	}

	hash, err := s.hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}

	if _, err := u.Update().SetPasswordHash(hash).Save(ctx); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	logger.Info("Password changed", zap.String("user_id", u.ID))
	return nil
}

// RequestPasswordReset issues a reset token for a local account. Returns
// nil token when no eligible account exists so the endpoint's response is
// identical either way.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*IssuedToken, error) {
	email = NormalizeEmail(email)

	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	// Federated accounts have no password to reset.
	if u.PasswordHash == "" {
		return nil, nil
	}

	raw, err := password.GenerateToken(resetTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	expiresAt := s.now().Add(s.resetTokenTTL)

	if _, err := u.Update().
		SetPasswordResetToken(password.HashToken(raw)).
		SetPasswordResetExpires(expiresAt).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}

	logger.Info("Password reset requested", zap.String("user_id", u.ID))
	return &IssuedToken{Token: raw, ExpiresAt: expiresAt}, nil
}

// ResetPassword consumes a reset token and installs a new password.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return apperrors.Unauthorized(apperrors.CodeResetTokenInvalid, "reset token is invalid or expired")
	}

	u, err := s.client.User.Query().
		Where(user.PasswordResetTokenEQ(password.HashToken(rawToken))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.Unauthorized(apperrors.CodeResetTokenInvalid, "reset token is invalid or expired")
		}
		return fmt.Errorf("query user by reset token: %w", err)
	}

	if u.PasswordResetExpires == nil || !u.PasswordResetExpires.After(s.now()) {
		return apperrors.Unauthorized(apperrors.CodeResetTokenInvalid, "reset token is invalid or expired")
	}

	if err := password.Validate(newPassword); err != nil {
		return apperrors.ErrWeakPassword(err.Error())
	}

	hash, err := s.hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}

	if _, err := u.Update().
		SetPasswordHash(hash).
		ClearPasswordResetToken().
		ClearPasswordResetExpires().
		Save(ctx); err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}

	logger.Info("Password reset completed", zap.String("user_id", u.ID))
	return nil
}

// RequestEmailVerification issues a verification token for an account
// whose email is not yet verified.
func (s *AuthService) RequestEmailVerification(ctx context.Context, userID string) (*IssuedToken, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if u.IsVerified {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "email is already verified")
	}

	raw, err := password.GenerateToken(resetTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("generate verification token: %w", err)
	}
	expiresAt := s.now().Add(s.verificationTokenTTL)

	if _, err := u.Update().
		SetEmailVerificationToken(password.HashToken(raw)).
		SetEmailVerificationExpires(expiresAt).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("store verification token: %w", err)
	}

	return &IssuedToken{Token: raw, ExpiresAt: expiresAt}, nil
}

// VerifyEmail consumes a verification token and marks the email verified.
func (s *AuthService) VerifyEmail(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return apperrors.Unauthorized(apperrors.CodeVerificationTokenInvalid, "verification token is invalid or expired")
	}

	u, err := s.client.User.Query().
		Where(user.EmailVerificationTokenEQ(password.HashToken(rawToken))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.Unauthorized(apperrors.CodeVerificationTokenInvalid, "verification token is invalid or expired")
		}
		return fmt.Errorf("query user by verification token: %w", err)
	}

	if u.EmailVerificationExpires == nil || !u.EmailVerificationExpires.After(s.now()) {
		return apperrors.Unauthorized(apperrors.CodeVerificationTokenInvalid, "verification token is invalid or expired")
	}

	if _, err := u.Update().
		SetIsVerified(true).
		ClearEmailVerificationToken().
		ClearEmailVerificationExpires().
		Save(ctx); err != nil {
		return fmt.Errorf("consume verification token: %w", err)
	}

	logger.Info("Email verified", zap.String("user_id", u.ID))
	return nil
}
