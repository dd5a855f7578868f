package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	"modgoviya.io/modgoviya/internal/auth/token"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// mapLoader serves user records from a fixed map.
type mapLoader struct {
	users map[string]*ent.User
}

func (l *mapLoader) CurrentUser(ctx context.Context, userID string) (*ent.User, error) {
	if u, ok := l.users[userID]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
}

func newAuthFixture(t *testing.T) (*token.Issuer, *mapLoader) {
	t.Helper()

	issuer := token.NewIssuer(token.Config{
		SigningKey: []byte("middleware-test-key-32-bytes-long!!!"),
		Issuer:     "modgoviya-test",
		TTL:        time.Hour,
	})
	loader := &mapLoader{users: map[string]*ent.User{
		"u-1": {ID: "u-1", Email: "farmer@modgoviya.lk", Role: user.RoleFarmer, IsActive: true},
		"u-2": {ID: "u-2", Email: "off@modgoviya.lk", Role: user.RoleFarmer, IsActive: false},
		"u-3": {ID: "u-3", Email: "admin@modgoviya.lk", Role: user.RoleAdmin, IsActive: true},
	}}
	return issuer, loader
}

func signFor(t *testing.T, issuer *token.Issuer, u *ent.User) string {
	t.Helper()
	signed, _, err := issuer.Issue(u.ID, u.Email, string(u.Role))
	require.NoError(t, err)
	return signed
}

func protectedRouter(issuer *token.Issuer, loader *mapLoader) *gin.Engine {
	r := gin.New()
	r.GET("/me", RequireAuth(issuer, loader), func(c *gin.Context) {
		id := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.ID, "role": id.Role})
	})
	r.GET("/feed", OptionalAuth(issuer, loader), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"anonymous": CurrentIdentity(c).Anonymous()})
	})
	r.GET("/admin", RequireAuth(issuer, loader), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	issuer, loader := newAuthFixture(t)
	r := protectedRouter(issuer, loader)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, h := range []string{"Bearer", "Basic abc", "Bearer "} {
			w := doGet(r, "/me", h)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", h)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		stale := token.NewIssuer(token.Config{
			SigningKey: []byte("middleware-test-key-32-bytes-long!!!"),
			Issuer:     "modgoviya-test",
			TTL:        -time.Minute,
		})
		w := doGet(r, "/me", "Bearer "+signFor(t, stale, loader.users["u-1"]))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer "+signFor(t, issuer, loader.users["u-1"]))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u-1"`)
	})

	t.Run("deactivated account rejected despite valid signature", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer "+signFor(t, issuer, loader.users["u-2"]))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted account rejected despite valid signature", func(t *testing.T) {
		signed, _, err := issuer.Issue("gone", "gone@modgoviya.lk", "farmer")
		require.NoError(t, err)
		w := doGet(r, "/me", "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role change since issuance is honored", func(t *testing.T) {
		// Token says farmer; the store now says admin.
		signed, _, err := issuer.Issue("u-3", "admin@modgoviya.lk", "farmer")
		require.NoError(t, err)
		w := doGet(r, "/me", "Bearer "+signed)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})
}

func TestOptionalAuth(t *testing.T) {
	issuer, loader := newAuthFixture(t)
	r := protectedRouter(issuer, loader)

	t.Run("anonymous passes through", func(t *testing.T) {
		w := doGet(r, "/feed", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"anonymous":true`)
	})

	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		w := doGet(r, "/feed", "Bearer junk")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"anonymous":true`)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		w := doGet(r, "/feed", "Bearer "+signFor(t, issuer, loader.users["u-1"]))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"anonymous":false`)
	})
}

func TestRequireRole(t *testing.T) {
	issuer, loader := newAuthFixture(t)
	r := protectedRouter(issuer, loader)

	t.Run("farmer forbidden", func(t *testing.T) {
		w := doGet(r, "/admin", "Bearer "+signFor(t, issuer, loader.users["u-1"]))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		w := doGet(r, "/admin", "Bearer "+signFor(t, issuer, loader.users["u-3"]))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIdentityContext(t *testing.T) {
	assert.True(t, IdentityFromContext(context.Background()).Anonymous())

	ctx := WithIdentity(context.Background(), Identity{ID: "u-9", Email: "x@y.lk", Role: "buyer"})
	id := IdentityFromContext(ctx)
	assert.False(t, id.Anonymous())
	assert.Equal(t, "buyer", id.Role)
}
