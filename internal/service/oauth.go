package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/facebook"
	"modgoviya.io/modgoviya/internal/auth/oidc"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
)

// LoginWithProvider dispatches an OAuth sign-in by provider name.
// Only google and facebook are implemented.
func (s *AuthService) LoginWithProvider(ctx context.Context, provider, providerToken string) (*AuthResult, error) {
	switch provider {
	case "google":
		return s.LoginWithGoogle(ctx, providerToken)
	case "facebook":
		return s.LoginWithFacebook(ctx, providerToken)
	default:
		return nil, apperrors.BadRequest(apperrors.CodeUnsupportedProvider,
			fmt.Sprintf("unsupported auth provider %q", provider))
	}
}

// LoginWithGoogle verifies a Google ID token and signs in the matching
// account, auto-provisioning one on first login.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	if s.google == nil {
		return nil, apperrors.BadRequest(apperrors.CodeUnsupportedProvider, "google login is not enabled")
	}

	claims, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, mapOIDCError(err)
	}
	if claims.Email == "" {
		return nil, apperrors.Unauthorized(apperrors.CodeTokenInvalid, "ID token carries no email")
	}

	email := NormalizeEmail(claims.Email)
	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	switch {
	case err == nil:
		// Existing account; fall through.
	case ent.IsNotFound(err):
		u, err = s.provisionGoogleUser(ctx, email, claims)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	if !u.IsActive {
		return nil, apperrors.ErrAccountDeactivated()
	}

	u, err = s.stampGoogleLogin(ctx, u, claims)
	if err != nil {
		return nil, err
	}

	return s.issueFor(u)
}

// LoginWithFacebook exchanges a Facebook access token for the profile it
// belongs to and signs in the matching account.
//
// Trust model: unlike Google OIDC there is no signature to verify locally;
// validity rests on the Graph API accepting the token over TLS. Weaker, by
// the provider's design.
func (s *AuthService) LoginWithFacebook(ctx context.Context, accessToken string) (*AuthResult, error) {
	if s.facebook == nil {
		return nil, apperrors.BadRequest(apperrors.CodeUnsupportedProvider, "facebook login is not enabled")
	}

	profile, err := s.facebook.Profile(ctx, accessToken)
	if err != nil {
		switch {
		case errors.Is(err, facebook.ErrInvalidToken):
			return nil, apperrors.Unauthorized(apperrors.CodeTokenInvalid, "facebook token rejected")
		case errors.Is(err, facebook.ErrNoEmail):
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
				"facebook account has no email; email permission is required")
		default:
			return nil, fmt.Errorf("facebook profile lookup: %w", err)
		}
	}

	email := NormalizeEmail(profile.Email)
	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	switch {
	case err == nil:
	case ent.IsNotFound(err):
		u, err = s.provisionFacebookUser(ctx, email, profile)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	if !u.IsActive {
		return nil, apperrors.ErrAccountDeactivated()
	}

	now := s.now()
	upd := u.Update().SetLastLoginAt(now)
	if u.FacebookID == nil {
		upd.SetFacebookID(profile.ID)
	}
	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record facebook login: %w", err)
	}

	return s.issueFor(u)
}

func (s *AuthService) provisionGoogleUser(ctx context.Context, email string, claims *oidc.Claims) (*ent.User, error) {
	name := claims.Name
	if name == "" {
		name = email
	}

	u, err := s.client.User.Create().
		SetID(newID()).
		SetEmail(email).
		SetFullName(name).
		SetAuthProvider(user.AuthProviderGoogle).
		SetGoogleID(claims.Subject).
		SetRole(user.RoleFarmer).
		SetIsVerified(claims.EmailVerified).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a provisioning race; the winner's record is the account.
			u, err = s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("re-query user after provisioning race: %w", err)
			}
			return u, nil
		}
		return nil, fmt.Errorf("provision google user: %w", err)
	}

	logger.Info("Account auto-provisioned from Google sign-in",
		zap.String("user_id", u.ID),
	)
	return u, nil
}

func (s *AuthService) provisionFacebookUser(ctx context.Context, email string, profile *facebook.Profile) (*ent.User, error) {
	name := profile.Name
	if name == "" {
		name = email
	}

	u, err := s.client.User.Create().
		SetID(newID()).
		SetEmail(email).
		SetFullName(name).
		SetAuthProvider(user.AuthProviderFacebook).
		SetFacebookID(profile.ID).
		SetRole(user.RoleFarmer).
		SetIsVerified(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			u, err = s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("re-query user after provisioning race: %w", err)
			}
			return u, nil
		}
		return nil, fmt.Errorf("provision facebook user: %w", err)
	}

	logger.Info("Account auto-provisioned from Facebook sign-in",
		zap.String("user_id", u.ID),
	)
	return u, nil
}

// stampGoogleLogin records the verified token's provenance on the account
// for re-auth auditing, links the Google subject on first federated login,
// and upgrades is_verified when the provider vouches for the email.
func (s *AuthService) stampGoogleLogin(ctx context.Context, u *ent.User, claims *oidc.Claims) (*ent.User, error) {
	now := s.now()

	upd := u.Update().
		SetLastLoginAt(now).
		SetOidcIssuer(claims.Issuer).
		SetOidcSubject(claims.Subject).
		SetOidcEmailVerified(claims.EmailVerified).
		SetOidcIssuedAt(claims.IssuedAt).
		SetOidcExpiration(claims.ExpiresAt)
	if len(claims.Audience) > 0 {
		upd.SetOidcAudience(claims.Audience[0])
	}
	if claims.HostedDomain != "" {
		upd.SetOidcHostedDomain(claims.HostedDomain)
	}
	if u.GoogleID == nil {
		upd.SetGoogleID(claims.Subject)
	}
	if !u.IsVerified && claims.EmailVerified {
		upd.SetIsVerified(true)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record google login: %w", err)
	}
	return updated, nil
}

func mapOIDCError(err error) error {
	switch {
	case errors.Is(err, oidc.ErrMissingClaim):
		return apperrors.Unauthorized(apperrors.CodeMissingClaim, err.Error())
	case errors.Is(err, oidc.ErrInvalidIssuer):
		return apperrors.Unauthorized(apperrors.CodeInvalidIssuer, err.Error())
	case errors.Is(err, oidc.ErrInvalidAudience):
		return apperrors.Unauthorized(apperrors.CodeInvalidAudience, err.Error())
	case errors.Is(err, oidc.ErrTokenExpired):
		return apperrors.Unauthorized(apperrors.CodeTokenExpired, err.Error())
	case errors.Is(err, oidc.ErrEmailNotVerified):
		return apperrors.Unauthorized(apperrors.CodeEmailNotVerified, err.Error())
	case errors.Is(err, oidc.ErrDomainNotAllowed):
		return apperrors.Forbidden(apperrors.CodeDomainNotAllowed, err.Error())
	default:
		return apperrors.Unauthorized(apperrors.CodeTokenInvalid, "ID token verification failed")
	}
}
