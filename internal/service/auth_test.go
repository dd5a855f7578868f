package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/lockout"
	"modgoviya.io/modgoviya/internal/auth/password"
	"modgoviya.io/modgoviya/internal/auth/token"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
	"modgoviya.io/modgoviya/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

const (
	testPassword = "Correct-Horse-9"
	wrongGuess   = "Wrong-Horse-99!"
)

// testClock is a mutable fixed clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*AuthService, *ent.Client, *testClock) {
	t.Helper()

	client := testutil.OpenEnt(t)
	clock := &testClock{now: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}

	svc := NewAuthService(client, Options{
		Hasher: password.NewHasher(bcrypt.MinCost),
		Policy: lockout.DefaultPolicy(),
		Issuer: token.NewIssuer(token.Config{
			SigningKey: []byte("test-signing-key-at-least-32-bytes!!"),
			Issuer:     "modgoviya-test",
			TTL:        time.Hour,
		}),
		Clock: clock.Now,
	})
	return svc, client, clock
}

func registerFarmer(t *testing.T, svc *AuthService, email string) *AuthResult {
	t.Helper()

	res, err := svc.Register(context.Background(), RegisterInput{
		Email:         email,
		FullName:      "Sunimal Perera",
		Password:      testPassword,
		AcceptedTerms: true,
	})
	require.NoError(t, err)
	return res
}

func TestRegister_Success(t *testing.T) {
	svc, client, _ := newTestService(t)

	res, err := svc.Register(context.Background(), RegisterInput{
		Email:         "  Sunimal@Gmail.com ",
		FullName:      "Sunimal Perera",
		Password:      testPassword,
		Role:          "trader",
		AcceptedTerms: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "sunimal@gmail.com", res.User.Email)
	assert.Equal(t, "trader", res.User.Role)
	assert.False(t, res.User.Verified)

	u := client.User.GetX(context.Background(), res.User.ID)
	assert.Equal(t, user.AuthProviderLocal, u.AuthProvider)
	assert.Equal(t, 0, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{
			name: "missing terms",
			in:   RegisterInput{Email: "a@b.lk", FullName: "A", Password: testPassword},
			code: apperrors.CodeValidationFailed,
		},
		{
			name: "bad email",
			in:   RegisterInput{Email: "not-an-email", FullName: "A", Password: testPassword, AcceptedTerms: true},
			code: apperrors.CodeValidationFailed,
		},
		{
			name: "missing full name",
			in:   RegisterInput{Email: "a@b.lk", Password: testPassword, AcceptedTerms: true},
			code: apperrors.CodeValidationFailed,
		},
		{
			name: "administrative role rejected",
			in:   RegisterInput{Email: "a@b.lk", FullName: "A", Password: testPassword, Role: "admin", AcceptedTerms: true},
			code: apperrors.CodeValidationFailed,
		},
		{
			name: "weak password",
			in:   RegisterInput{Email: "a@b.lk", FullName: "A", Password: "short", AcceptedTerms: true},
			code: apperrors.CodeWeakPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			assert.True(t, apperrors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerFarmer(t, svc, "dup@modgoviya.lk")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:         "DUP@modgoviya.lk",
		FullName:      "Second Account",
		Password:      testPassword,
		AcceptedTerms: true,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateEmail), "got %v", err)
}

func TestRegister_ConcurrentDuplicateHitsUniqueIndex(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	// Simulate a racing registration that commits between the advisory
	// Exist() pre-check and the insert: a mutation hook writes the
	// conflicting row right before the insert runs, so the unique email
	// index is what rejects the second account.
	var raced bool
	client.User.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) && !raced {
				raced = true
				client.User.Create().
					SetID("race-winner").
					SetEmail("race@modgoviya.lk").
					SetFullName("First Writer").
					SetPasswordHash("placeholder").
					SaveX(ctx)
			}
			return next.Mutate(ctx, m)
		})
	})

	_, err := svc.Register(ctx, RegisterInput{
		Email:         "race@modgoviya.lk",
		FullName:      "Second Writer",
		Password:      testPassword,
		AcceptedTerms: true,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateEmail), "got %v", err)

	// The winner's record survives untouched.
	u := client.User.Query().Where(user.EmailEQ("race@modgoviya.lk")).OnlyX(ctx)
	assert.Equal(t, "race-winner", u.ID)
}

func TestLogin_Success(t *testing.T) {
	svc, client, clock := newTestService(t)
	res := registerFarmer(t, svc, "login@modgoviya.lk")

	got, err := svc.Login(context.Background(), "login@modgoviya.lk", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, res.User.ID, got.User.ID)

	u := client.User.GetX(context.Background(), res.User.ID)
	require.NotNil(t, u.LastLoginAt)
	assert.True(t, u.LastLoginAt.Equal(clock.Now()))
}

func TestLogin_NoUserEnumeration(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerFarmer(t, svc, "real@modgoviya.lk")

	_, errUnknown := svc.Login(context.Background(), "ghost@modgoviya.lk", testPassword)
	_, errWrongPw := svc.Login(context.Background(), "real@modgoviya.lk", wrongGuess)

	appUnknown, ok := apperrors.IsAppError(errUnknown)
	require.True(t, ok)
	appWrongPw, ok := apperrors.IsAppError(errWrongPw)
	require.True(t, ok)

	// Identical code, message, and status whether the account exists or not.
	assert.Equal(t, appUnknown.Code, appWrongPw.Code)
	assert.Equal(t, appUnknown.Message, appWrongPw.Message)
	assert.Equal(t, appUnknown.HTTPStatus, appWrongPw.HTTPStatus)
}

func TestLogin_LockoutThreshold(t *testing.T) {
	svc, client, _ := newTestService(t)
	res := registerFarmer(t, svc, "lock@modgoviya.lk")
	ctx := context.Background()

	// Four failures leave the account unlocked.
	for i := 0; i < 4; i++ {
		_, err := svc.Login(ctx, "lock@modgoviya.lk", wrongGuess)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
	}
	u := client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, 4, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)

	// The correct password still works on attempt five and resets counters.
	_, err := svc.Login(ctx, "lock@modgoviya.lk", testPassword)
	require.NoError(t, err)
	u = client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, 0, u.LoginAttempts)
}

func TestLogin_LockoutEngagesAndRejectsCorrectPassword(t *testing.T) {
	svc, client, clock := newTestService(t)
	res := registerFarmer(t, svc, "locked@modgoviya.lk")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, "locked@modgoviya.lk", wrongGuess)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
	}

	u := client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, 5, u.LoginAttempts)
	require.NotNil(t, u.LockUntil)
	assert.True(t, u.LockUntil.Equal(clock.Now().Add(2*time.Hour)))

	// Attempt six with the correct password is rejected as locked, not as
	// bad credentials, and does not bump the counter.
	_, err := svc.Login(ctx, "locked@modgoviya.lk", testPassword)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountLocked), "got %v", err)

	u = client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, 5, u.LoginAttempts)
}

func TestLogin_LockExpiry(t *testing.T) {
	svc, client, clock := newTestService(t)
	res := registerFarmer(t, svc, "expiry@modgoviya.lk")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = svc.Login(ctx, "expiry@modgoviya.lk", wrongGuess)
	}

	t.Run("still locked just before expiry", func(t *testing.T) {
		clock.Advance(2*time.Hour - time.Second)
		_, err := svc.Login(ctx, "expiry@modgoviya.lk", testPassword)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountLocked))
	})

	t.Run("correct password succeeds once the lock expires", func(t *testing.T) {
		clock.Advance(2 * time.Second)
		_, err := svc.Login(ctx, "expiry@modgoviya.lk", testPassword)
		require.NoError(t, err)

		u := client.User.GetX(ctx, res.User.ID)
		assert.Equal(t, 0, u.LoginAttempts)
		assert.Nil(t, u.LockUntil)
	})
}

func TestLogin_ExpiredLockReprocessesFailureFresh(t *testing.T) {
	svc, client, clock := newTestService(t)
	res := registerFarmer(t, svc, "fresh@modgoviya.lk")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = svc.Login(ctx, "fresh@modgoviya.lk", wrongGuess)
	}
	clock.Advance(3 * time.Hour)

	// A failure after expiry counts as the first of a new sequence.
	_, err := svc.Login(ctx, "fresh@modgoviya.lk", wrongGuess)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))

	u := client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, 1, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	svc, client, _ := newTestService(t)
	res := registerFarmer(t, svc, "inactive@modgoviya.lk")
	ctx := context.Background()

	client.User.UpdateOneID(res.User.ID).SetIsActive(false).SaveX(ctx)

	_, err := svc.Login(ctx, "inactive@modgoviya.lk", testPassword)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountDeactivated), "got %v", err)
}

func TestLogin_FederatedAccountHasNoPassword(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	u := client.User.Create().
		SetID("fed-1").
		SetEmail("fed@modgoviya.lk").
		SetFullName("Federated User").
		SetAuthProvider(user.AuthProviderGoogle).
		SetGoogleID("g-sub-1").
		SaveX(ctx)

	_, err := svc.Login(ctx, "fed@modgoviya.lk", testPassword)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))

	// The failed attempt is still recorded.
	got := client.User.GetX(ctx, u.ID)
	assert.Equal(t, 1, got.LoginAttempts)
}

func TestChangePassword(t *testing.T) {
	svc, client, _ := newTestService(t)
	res := registerFarmer(t, svc, "change@modgoviya.lk")
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, res.User.ID, wrongGuess, "New-Password-1!")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))

		// Unlike login, a failed change does not touch lockout counters.
		u := client.User.GetX(ctx, res.User.ID)
		assert.Equal(t, 0, u.LoginAttempts)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, res.User.ID, testPassword, "weak")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeWeakPassword))
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, res.User.ID, testPassword, "New-Password-1!"))

		_, err := svc.Login(ctx, "change@modgoviya.lk", testPassword)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
		_, err = svc.Login(ctx, "change@modgoviya.lk", "New-Password-1!")
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "missing-id", testPassword, "New-Password-1!")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUserNotFound))
	})
}

func TestPasswordReset_Flow(t *testing.T) {
	svc, _, clock := newTestService(t)
	registerFarmer(t, svc, "reset@modgoviya.lk")
	ctx := context.Background()

	issued, err := svc.RequestPasswordReset(ctx, "reset@modgoviya.lk")
	require.NoError(t, err)
	require.NotNil(t, issued)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, issued.ExpiresAt.Equal(clock.Now().Add(10*time.Minute)))

	t.Run("garbage token rejected", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "not-a-real-token", "New-Password-1!")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeResetTokenInvalid))
	})

	t.Run("token consumes and new password works", func(t *testing.T) {
		require.NoError(t, svc.ResetPassword(ctx, issued.Token, "New-Password-1!"))

		_, err := svc.Login(ctx, "reset@modgoviya.lk", "New-Password-1!")
		assert.NoError(t, err)

		// Single use.
		err = svc.ResetPassword(ctx, issued.Token, "Another-Pass-2!")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeResetTokenInvalid))
	})
}

func TestPasswordReset_Expiry(t *testing.T) {
	svc, _, clock := newTestService(t)
	registerFarmer(t, svc, "stale@modgoviya.lk")
	ctx := context.Background()

	issued, err := svc.RequestPasswordReset(ctx, "stale@modgoviya.lk")
	require.NoError(t, err)
	require.NotNil(t, issued)

	clock.Advance(11 * time.Minute)
	err = svc.ResetPassword(ctx, issued.Token, "New-Password-1!")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeResetTokenInvalid))
}

func TestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	svc, _, _ := newTestService(t)

	issued, err := svc.RequestPasswordReset(context.Background(), "ghost@modgoviya.lk")
	assert.NoError(t, err)
	assert.Nil(t, issued)
}

func TestEmailVerification_Flow(t *testing.T) {
	svc, client, clock := newTestService(t)
	res := registerFarmer(t, svc, "verify@modgoviya.lk")
	ctx := context.Background()

	issued, err := svc.RequestEmailVerification(ctx, res.User.ID)
	require.NoError(t, err)
	assert.True(t, issued.ExpiresAt.Equal(clock.Now().Add(24*time.Hour)))

	require.NoError(t, svc.VerifyEmail(ctx, issued.Token))

	u := client.User.GetX(ctx, res.User.ID)
	assert.True(t, u.IsVerified)

	t.Run("already verified", func(t *testing.T) {
		_, err := svc.RequestEmailVerification(ctx, res.User.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})

	t.Run("token is single use", func(t *testing.T) {
		err := svc.VerifyEmail(ctx, issued.Token)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeVerificationTokenInvalid))
	})
}

func TestCurrentUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	res := registerFarmer(t, svc, "me@modgoviya.lk")

	u, err := svc.CurrentUser(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@modgoviya.lk", u.Email)

	_, err = svc.CurrentUser(context.Background(), "missing")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUserNotFound))
}
