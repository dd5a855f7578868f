// Package oidc verifies Google OpenID Connect ID tokens against the
// provider's published JWKS.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// GoogleJWKSURL is Google's published signing key set.
	GoogleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

	defaultClockTolerance = 60 * time.Second
	defaultMaxTokenAge    = 5 * time.Minute
	defaultCacheTTL       = time.Hour
)

// Google publishes tokens under both issuer forms.
var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

var (
	ErrInvalidToken     = errors.New("invalid ID token")
	ErrMissingClaim     = errors.New("missing required claim")
	ErrInvalidIssuer    = errors.New("invalid issuer")
	ErrInvalidAudience  = errors.New("invalid audience")
	ErrTokenExpired     = errors.New("token expired")
	ErrEmailNotVerified = errors.New("email not verified by provider")
	ErrDomainNotAllowed = errors.New("email domain not allowed")
)

// Claims are the ID-token claims the platform cares about.
type Claims struct {
	Issuer          string
	Subject         string
	Audience        []string
	ExpiresAt       time.Time
	IssuedAt        time.Time
	AuthorizedParty string
	Email           string
	EmailVerified   bool
	Name            string
	GivenName       string
	FamilyName      string
	Picture         string
	Locale          string
	HostedDomain    string
}

// Config controls token verification.
type Config struct {
	// ClientID is the OAuth client the token audience must match.
	ClientID string
	// JWKSURL overrides the provider key-set endpoint. Used by tests.
	JWKSURL string
	// Issuers overrides the accepted issuer values.
	Issuers []string
	// ClockTolerance is the leeway applied to time-based checks.
	ClockTolerance time.Duration
	// MaxTokenAge rejects tokens issued further in the past than this.
	MaxTokenAge time.Duration
	// RequireVerifiedEmail rejects tokens whose email the provider has
	// not verified.
	RequireVerifiedEmail bool
	// AllowedDomains, when non-empty, restricts sign-in to email
	// addresses under the listed domains.
	AllowedDomains []string
	// HTTPClient overrides the client used to fetch the JWKS.
	HTTPClient *http.Client
	// CacheTTL bounds how long fetched signing keys are reused.
	CacheTTL time.Duration

	// now is an injectable clock for tests.
	now func() time.Time
}

// Verifier validates Google ID tokens.
type Verifier struct {
	cfg  Config
	keys *jwksCache
}

// NewVerifier builds a Verifier, filling in Google defaults for any
// unset fields.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("oidc: client ID is required")
	}
	if cfg.JWKSURL == "" {
		cfg.JWKSURL = GoogleJWKSURL
	}
	if len(cfg.Issuers) == 0 {
		cfg.Issuers = googleIssuers
	}
	if cfg.ClockTolerance <= 0 {
		cfg.ClockTolerance = defaultClockTolerance
	}
	if cfg.MaxTokenAge <= 0 {
		cfg.MaxTokenAge = defaultMaxTokenAge
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}

	return &Verifier{
		cfg: cfg,
		keys: &jwksCache{
			jwksURL:  cfg.JWKSURL,
			client:   cfg.HTTPClient,
			cacheTTL: cfg.CacheTTL,
		},
	}, nil
}

// Verify checks the token's signature and claims and returns the parsed
// claims. Claim checks run in a fixed order so callers get a stable
// failure reason for a given token.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	parts := strings.Split(rawToken, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: malformed token", ErrInvalidToken)
	}

	header, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: decode header: %v", ErrInvalidToken, err)
	}
	alg, _ := header["alg"].(string)
	if alg != "RS256" {
		return nil, fmt.Errorf("%w: unexpected algorithm %q", ErrInvalidToken, alg)
	}
	kid, _ := header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrInvalidToken)
	}

	key, err := v.keys.key(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := verifyRS256(rawToken, key); err != nil {
		return nil, fmt.Errorf("%w: signature verification failed", ErrInvalidToken)
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrInvalidToken, err)
	}

	claims := parseClaims(payload)
	if err := v.validate(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (v *Verifier) validate(c *Claims) error {
	for _, req := range []struct {
		name string
		ok   bool
	}{
		{"iss", c.Issuer != ""},
		{"sub", c.Subject != ""},
		{"aud", len(c.Audience) > 0},
		{"exp", !c.ExpiresAt.IsZero()},
		{"iat", !c.IssuedAt.IsZero()},
	} {
		if !req.ok {
			return fmt.Errorf("%w: %s", ErrMissingClaim, req.name)
		}
	}

	issuerOK := false
	for _, iss := range v.cfg.Issuers {
		if c.Issuer == iss {
			issuerOK = true
			break
		}
	}
	if !issuerOK {
		return fmt.Errorf("%w: %q", ErrInvalidIssuer, c.Issuer)
	}

	audOK := false
	for _, aud := range c.Audience {
		if aud == v.cfg.ClientID {
			audOK = true
			break
		}
	}
	if !audOK {
		return fmt.Errorf("%w: token not issued for this client", ErrInvalidAudience)
	}

	now := v.cfg.now()
	if c.ExpiresAt.Before(now.Add(-v.cfg.ClockTolerance)) {
		return fmt.Errorf("%w: expired at %s", ErrTokenExpired, c.ExpiresAt.Format(time.RFC3339))
	}
	oldest := now.Add(-v.cfg.MaxTokenAge).Add(-v.cfg.ClockTolerance)
	if c.IssuedAt.Before(oldest) {
		return fmt.Errorf("%w: issued too long ago at %s", ErrTokenExpired, c.IssuedAt.Format(time.RFC3339))
	}

	if v.cfg.RequireVerifiedEmail && c.Email != "" && !c.EmailVerified {
		return ErrEmailNotVerified
	}

	if len(v.cfg.AllowedDomains) > 0 && c.Email != "" {
		domain := emailDomain(c.Email)
		allowed := false
		for _, d := range v.cfg.AllowedDomains {
			if strings.EqualFold(domain, d) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %q", ErrDomainNotAllowed, domain)
		}
	}

	return nil
}

func parseClaims(payload map[string]interface{}) *Claims {
	c := &Claims{
		Issuer:          stringClaim(payload, "iss"),
		Subject:         stringClaim(payload, "sub"),
		AuthorizedParty: stringClaim(payload, "azp"),
		Email:           stringClaim(payload, "email"),
		Name:            stringClaim(payload, "name"),
		GivenName:       stringClaim(payload, "given_name"),
		FamilyName:      stringClaim(payload, "family_name"),
		Picture:         stringClaim(payload, "picture"),
		Locale:          stringClaim(payload, "locale"),
		HostedDomain:    stringClaim(payload, "hd"),
	}

	switch aud := payload["aud"].(type) {
	case string:
		c.Audience = []string{aud}
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok {
				c.Audience = append(c.Audience, s)
			}
		}
	}

	if exp, ok := payload["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if iat, ok := payload["iat"].(float64); ok {
		c.IssuedAt = time.Unix(int64(iat), 0)
	}

	// Google sends email_verified as a bool or a string.
	switch ev := payload["email_verified"].(type) {
	case bool:
		c.EmailVerified = ev
	case string:
		c.EmailVerified = ev == "true"
	}

	return c
}

func stringClaim(payload map[string]interface{}, name string) string {
	s, _ := payload[name].(string)
	return s
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return email[at+1:]
}
