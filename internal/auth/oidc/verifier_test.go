package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID = "modgoviya-client-id.apps.googleusercontent.com"
	testKid      = "test-key-1"
)

type tokenFixture struct {
	key    *rsa.PrivateKey
	server *httptest.Server
}

func newTokenFixture(t *testing.T) *tokenFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	doc := jwksDoc{Keys: []jwk{{
		Kty: "RSA",
		Kid: testKid,
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
	}}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(server.Close)

	return &tokenFixture{key: key, server: server}
}

func (f *tokenFixture) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func baseClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"sub":            "108177513594876",
		"aud":            testClientID,
		"exp":            now.Add(time.Hour).Unix(),
		"iat":            now.Unix(),
		"email":          "sunimal@gmail.com",
		"email_verified": true,
		"name":           "Sunimal Perera",
	}
}

func newTestVerifier(t *testing.T, f *tokenFixture, mutate func(*Config)) *Verifier {
	t.Helper()

	cfg := Config{
		ClientID:             testClientID,
		JWKSURL:              f.server.URL,
		RequireVerifiedEmail: true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	v, err := NewVerifier(cfg)
	require.NoError(t, err)
	return v
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.Error(t, err)
}

func TestVerify_ValidToken(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	now := time.Now()
	raw := f.sign(t, baseClaims(now))

	claims, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "108177513594876", claims.Subject)
	assert.Equal(t, "sunimal@gmail.com", claims.Email)
	assert.Equal(t, "Sunimal Perera", claims.Name)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, []string{testClientID}, claims.Audience)
}

func TestVerify_AcceptsBothGoogleIssuers(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	for _, iss := range []string{"https://accounts.google.com", "accounts.google.com"} {
		claims := baseClaims(time.Now())
		claims["iss"] = iss
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.NoError(t, err, "issuer %q", iss)
	}
}

func TestVerify_RejectsForeignIssuer(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	claims := baseClaims(time.Now())
	claims["iss"] = "https://evil.example.com"

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidIssuer)
}

func TestVerify_RejectsWrongAudience(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	claims := baseClaims(time.Now())
	claims["aud"] = "some-other-client"

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidAudience)
}

func TestVerify_AudienceList(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	claims := baseClaims(time.Now())
	claims["aud"] = []string{"another-client", testClientID}

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.NoError(t, err)
}

func TestVerify_Expiry(t *testing.T) {
	f := newTokenFixture(t)
	now := time.Now()
	v := newTestVerifier(t, f, func(cfg *Config) {
		cfg.now = func() time.Time { return now }
	})

	t.Run("expired beyond tolerance", func(t *testing.T) {
		claims := baseClaims(now)
		claims["exp"] = now.Add(-61 * time.Second).Unix()
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired within tolerance", func(t *testing.T) {
		claims := baseClaims(now)
		claims["exp"] = now.Add(-30 * time.Second).Unix()
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.NoError(t, err)
	})

	t.Run("issued too long ago", func(t *testing.T) {
		claims := baseClaims(now)
		claims["iat"] = now.Add(-10 * time.Minute).Unix()
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("issued within max age plus tolerance", func(t *testing.T) {
		claims := baseClaims(now)
		claims["iat"] = now.Add(-5*time.Minute - 30*time.Second).Unix()
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.NoError(t, err)
	})
}

func TestVerify_MissingClaims(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	for _, name := range []string{"iss", "sub", "aud", "exp", "iat"} {
		claims := baseClaims(time.Now())
		delete(claims, name)
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.ErrorIs(t, err, ErrMissingClaim, "claim %s", name)
	}
}

func TestVerify_UnverifiedEmail(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	claims := baseClaims(time.Now())
	claims["email_verified"] = false

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestVerify_EmailVerifiedAsString(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	claims := baseClaims(time.Now())
	claims["email_verified"] = "true"

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.NoError(t, err)
}

func TestVerify_DomainAllowList(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, func(cfg *Config) {
		cfg.AllowedDomains = []string{"agrimin.gov.lk"}
	})

	t.Run("domain allowed", func(t *testing.T) {
		claims := baseClaims(time.Now())
		claims["email"] = "officer@agrimin.gov.lk"
		_, err := v.Verify(context.Background(), f.sign(t, claims))
		assert.NoError(t, err)
	})

	t.Run("domain rejected", func(t *testing.T) {
		_, err := v.Verify(context.Background(), f.sign(t, baseClaims(time.Now())))
		assert.ErrorIs(t, err, ErrDomainNotAllowed)
	})
}

func TestVerify_RejectsBadSignature(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, baseClaims(time.Now()))
	token.Header["kid"] = testKid
	raw, err := token.SignedString(other)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsMalformedToken(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := v.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}

func TestVerify_RejectsUnexpectedAlgorithm(t *testing.T) {
	f := newTokenFixture(t)
	v := newTestVerifier(t, f, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, baseClaims(time.Now()))
	token.Header["kid"] = testKid
	raw, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
