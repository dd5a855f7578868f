package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key-1234567890123456")

func testIssuer(ttl time.Duration) *Issuer {
	return NewIssuer(Config{
		SigningKey: testKey,
		Issuer:     "modgoviya",
		TTL:        ttl,
	})
}

func TestIssueAndVerify(t *testing.T) {
	iss := testIssuer(time.Hour)

	signed, expiresAt, err := iss.Issue("u-1", "anil@modgoviya.lk", "farmer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := iss.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID())
	assert.Equal(t, "anil@modgoviya.lk", claims.Email)
	assert.Equal(t, "farmer", claims.Role)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.NotBefore)
}

func TestVerify_RejectsWrongKey(t *testing.T) {
	signed, _, err := testIssuer(time.Hour).Issue("u-1", "a@b.lk", "farmer")
	require.NoError(t, err)

	other := NewIssuer(Config{
		SigningKey: []byte("another-key-9876543210987654321098"),
		Issuer:     "modgoviya",
	})
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_RejectsExpired(t *testing.T) {
	iss := testIssuer(-time.Minute)

	signed, _, err := iss.Issue("u-1", "a@b.lk", "farmer")
	require.NoError(t, err)

	_, err = iss.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_RejectsMalformed(t *testing.T) {
	iss := testIssuer(time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := iss.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", raw)
	}
}

func TestVerify_RejectsWrongIssuer(t *testing.T) {
	foreign := NewIssuer(Config{
		SigningKey: testKey,
		Issuer:     "someone-else",
		TTL:        time.Hour,
	})
	signed, _, err := foreign.Issue("u-1", "a@b.lk", "farmer")
	require.NoError(t, err)

	_, err = testIssuer(time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestIssue_DefaultTTL(t *testing.T) {
	iss := NewIssuer(Config{SigningKey: testKey, Issuer: "modgoviya"})

	_, expiresAt, err := iss.Issue("u-1", "a@b.lk", "farmer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)
}
