// Package middleware provides HTTP middleware for the ModGoviya auth API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const ctxKeyIdentity contextKey = "identity"

// Identity is the caller attached to a request. The zero value is the
// anonymous caller.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// Anonymous reports whether no authenticated caller is attached.
func (i Identity) Anonymous() bool {
	return i.ID == ""
}

// WithIdentity stores the caller identity in a context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext extracts the caller identity; the anonymous identity
// is returned when none was attached.
func IdentityFromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(ctxKeyIdentity).(Identity); ok {
		return v
	}
	return Identity{}
}

// CurrentIdentity extracts the caller identity from a gin request.
func CurrentIdentity(c *gin.Context) Identity {
	return IdentityFromContext(c.Request.Context())
}

func attachIdentity(c *gin.Context, id Identity) {
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
}
