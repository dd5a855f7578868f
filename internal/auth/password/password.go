// Package password provides password hashing, strength validation, and
// single-use token helpers for the credential store.
package password

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = 12

// symbols is the punctuation set accepted by the strength policy.
const symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?~` + "`"

// ErrMismatch is returned by Verify when the password does not match.
var ErrMismatch = errors.New("password: mismatch")

// Hasher hashes and verifies passwords using bcrypt. Every Hash call embeds
// a fresh random salt, so equal inputs produce different encodings.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt hasher. Costs outside bcrypt's valid range
// fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt encoding of password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 characters (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify checks password against a stored hash. bcrypt's comparison is
// constant-time with respect to the mismatch position. Returns ErrMismatch
// on any failure so callers cannot distinguish malformed hashes from wrong
// passwords.
func (h *Hasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Validate enforces the strength policy for local-auth passwords:
// minimum 8 characters with at least one uppercase letter, one lowercase
// letter, one digit, and one symbol. The returned error message is safe to
// surface to clients.
func Validate(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(symbols, r):
			hasSymbol = true
		}
	}
	switch {
	case !hasUpper:
		return errors.New("password must contain an uppercase letter")
	case !hasLower:
		return errors.New("password must contain a lowercase letter")
	case !hasDigit:
		return errors.New("password must contain a digit")
	case !hasSymbol:
		return errors.New("password must contain a symbol")
	}
	return nil
}
