package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/facebook"
	"modgoviya.io/modgoviya/internal/auth/oidc"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
)

// stubGoogle returns fixed claims or a fixed error.
type stubGoogle struct {
	claims *oidc.Claims
	err    error
}

func (s *stubGoogle) Verify(ctx context.Context, rawToken string) (*oidc.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

// stubFacebook returns a fixed profile or a fixed error.
type stubFacebook struct {
	profile *facebook.Profile
	err     error
}

func (s *stubFacebook) Profile(ctx context.Context, accessToken string) (*facebook.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func googleClaims(email string) *oidc.Claims {
	return &oidc.Claims{
		Issuer:        "https://accounts.google.com",
		Subject:       "g-sub-108177",
		Audience:      []string{"client-id"},
		ExpiresAt:     time.Now().Add(time.Hour),
		IssuedAt:      time.Now(),
		Email:         email,
		EmailVerified: true,
		Name:          "Nimal Fernando",
	}
}

func TestLoginWithProvider_Unsupported(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.LoginWithProvider(context.Background(), "github", "tok")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedProvider), "got %v", err)
}

func TestLoginWithGoogle_Disabled(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.LoginWithGoogle(context.Background(), "tok")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedProvider))
}

func TestLoginWithGoogle_AutoProvisions(t *testing.T) {
	svc, client, _ := newTestService(t)
	svc.google = &stubGoogle{claims: googleClaims("nimal@gmail.com")}
	ctx := context.Background()

	res, err := svc.LoginWithGoogle(ctx, "valid-id-token")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "nimal@gmail.com", res.User.Email)
	assert.Equal(t, "farmer", res.User.Role)
	assert.True(t, res.User.Verified)

	u := client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, user.AuthProviderGoogle, u.AuthProvider)
	require.NotNil(t, u.GoogleID)
	assert.Equal(t, "g-sub-108177", *u.GoogleID)
	assert.Equal(t, "", u.PasswordHash)
	assert.Equal(t, "https://accounts.google.com", u.OidcIssuer)
}

func TestLoginWithGoogle_LinksExistingLocalAccount(t *testing.T) {
	svc, client, _ := newTestService(t)
	res := registerFarmer(t, svc, "linked@gmail.com")
	svc.google = &stubGoogle{claims: googleClaims("linked@gmail.com")}
	ctx := context.Background()

	got, err := svc.LoginWithGoogle(ctx, "valid-id-token")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, got.User.ID)

	u := client.User.GetX(ctx, res.User.ID)
	// Provider linked and email upgraded to verified; the local password
	// stays untouched.
	require.NotNil(t, u.GoogleID)
	assert.Equal(t, "g-sub-108177", *u.GoogleID)
	assert.True(t, u.IsVerified)
	assert.Equal(t, user.AuthProviderLocal, u.AuthProvider)
	assert.NotEmpty(t, u.PasswordHash)

	_, err = svc.Login(ctx, "linked@gmail.com", testPassword)
	assert.NoError(t, err)
}

func TestLoginWithGoogle_DeactivatedAccount(t *testing.T) {
	svc, client, _ := newTestService(t)
	res := registerFarmer(t, svc, "off@gmail.com")
	client.User.UpdateOneID(res.User.ID).SetIsActive(false).SaveX(context.Background())
	svc.google = &stubGoogle{claims: googleClaims("off@gmail.com")}

	_, err := svc.LoginWithGoogle(context.Background(), "valid-id-token")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountDeactivated))
}

func TestLoginWithGoogle_VerifierErrorsMapToCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"expired", oidc.ErrTokenExpired, apperrors.CodeTokenExpired},
		{"missing claim", oidc.ErrMissingClaim, apperrors.CodeMissingClaim},
		{"issuer", oidc.ErrInvalidIssuer, apperrors.CodeInvalidIssuer},
		{"audience", oidc.ErrInvalidAudience, apperrors.CodeInvalidAudience},
		{"unverified email", oidc.ErrEmailNotVerified, apperrors.CodeEmailNotVerified},
		{"domain", oidc.ErrDomainNotAllowed, apperrors.CodeDomainNotAllowed},
		{"signature", oidc.ErrInvalidToken, apperrors.CodeTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			svc.google = &stubGoogle{err: tt.err}

			_, err := svc.LoginWithGoogle(context.Background(), "bad-token")
			assert.True(t, apperrors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoginWithGoogle_NoEmailClaim(t *testing.T) {
	svc, _, _ := newTestService(t)
	claims := googleClaims("")
	svc.google = &stubGoogle{claims: claims}

	_, err := svc.LoginWithGoogle(context.Background(), "valid-id-token")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeTokenInvalid))
}

func TestLoginWithFacebook_AutoProvisions(t *testing.T) {
	svc, client, _ := newTestService(t)
	svc.facebook = &stubFacebook{profile: &facebook.Profile{
		ID:    "fb-10223344",
		Name:  "Kumari Jayawardena",
		Email: "kumari@example.com",
	}}
	ctx := context.Background()

	res, err := svc.LoginWithFacebook(ctx, "fb-access-token")
	require.NoError(t, err)
	assert.Equal(t, "kumari@example.com", res.User.Email)

	u := client.User.GetX(ctx, res.User.ID)
	assert.Equal(t, user.AuthProviderFacebook, u.AuthProvider)
	require.NotNil(t, u.FacebookID)
	assert.Equal(t, "fb-10223344", *u.FacebookID)
}

func TestLoginWithFacebook_TokenRejected(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.facebook = &stubFacebook{err: facebook.ErrInvalidToken}

	_, err := svc.LoginWithFacebook(context.Background(), "bad")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeTokenInvalid))
}

func TestLoginWithFacebook_NoEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.facebook = &stubFacebook{err: facebook.ErrNoEmail}

	_, err := svc.LoginWithFacebook(context.Background(), "tok")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestAdminUserManagement(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	res := registerFarmer(t, svc, "managed@modgoviya.lk")

	t.Run("list", func(t *testing.T) {
		users, total, err := svc.ListUsers(ctx, ListUsersFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, users, 1)
	})

	t.Run("promote to extension officer", func(t *testing.T) {
		role := "extension_officer"
		u, err := svc.AdminUpdateUser(ctx, res.User.ID, AdminUserPatch{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, user.RoleExtensionOfficer, u.Role)
	})

	t.Run("deactivate", func(t *testing.T) {
		active := false
		u, err := svc.AdminUpdateUser(ctx, res.User.ID, AdminUserPatch{IsActive: &active})
		require.NoError(t, err)
		assert.False(t, u.IsActive)

		_, err = svc.Login(ctx, "managed@modgoviya.lk", testPassword)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountDeactivated))
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		role := "landlord"
		_, err := svc.AdminUpdateUser(ctx, res.User.ID, AdminUserPatch{Role: &role})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})

	t.Run("filter by role", func(t *testing.T) {
		users, total, err := svc.ListUsers(ctx, ListUsersFilter{Role: "farmer"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, users)
	})
}
