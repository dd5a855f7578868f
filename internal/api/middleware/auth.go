package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/internal/auth/token"
)

// UserLoader fetches the current account record for a token subject.
// Satisfied by service.AuthService.
type UserLoader interface {
	CurrentUser(ctx context.Context, userID string) (*ent.User, error)
}

// RequireAuth validates the Bearer token and attaches the caller identity.
// The subject's record is re-fetched from the store so role and
// active-status changes since issuance are honored; a missing or
// deactivated account is treated as unauthenticated even when the
// signature is valid.
func RequireAuth(issuer *token.Issuer, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := resolveIdentity(c, issuer, users)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "authentication required",
			})
			return
		}
		attachIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is present
// and lets anonymous or invalid-token requests through unauthenticated.
func OptionalAuth(issuer *token.Issuer, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := resolveIdentity(c, issuer, users); ok {
			attachIdentity(c, id)
		}
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose current role is not in
// the allowed set. Must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if _, ok := allowed[id.Role]; id.Anonymous() || !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "FORBIDDEN",
				"message": "insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, issuer *token.Issuer, users UserLoader) (Identity, bool) {
	raw, ok := bearerToken(c)
	if !ok {
		return Identity{}, false
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		return Identity{}, false
	}

	u, err := users.CurrentUser(c.Request.Context(), claims.UserID())
	if err != nil || !u.IsActive {
		return Identity{}, false
	}

	return Identity{ID: u.ID, Email: u.Email, Role: string(u.Role)}, true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
