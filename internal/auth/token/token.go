// Package token issues and verifies session bearer tokens.
//
// There is exactly one issuance path: HS256-signed JWTs carrying the user
// id (sub), email, and role, with a single configured lifetime.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session token claim set.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Config holds token signing configuration.
type Config struct {
	SigningKey []byte
	Issuer     string
	TTL        time.Duration
}

// Verification failure reasons.
var (
	ErrExpired = errors.New("token: expired")
	ErrInvalid = errors.New("token: invalid")
)

// Issuer signs and verifies session tokens.
type Issuer struct {
	cfg Config
}

// NewIssuer creates a token issuer. The signing key must be non-empty;
// config validation guarantees this at startup.
func NewIssuer(cfg Config) *Issuer {
	if cfg.TTL == 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	return &Issuer{cfg: cfg}
}

// Issue creates a signed session token for the given user.
func (i *Issuer) Issue(userID, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.cfg.TTL)

	jti, _ := uuid.NewV7()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    i.cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.cfg.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a session token string.
// Malformed, mis-signed, or expired tokens fail; expiry is reported as
// ErrExpired, everything else as ErrInvalid.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.cfg.SigningKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !t.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
