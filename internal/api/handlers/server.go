// Package handlers implements the HTTP handlers of the auth API.
//
// Handlers bind and validate the request body, call the service layer, and
// attach errors for the centralized error middleware; they hold no business
// logic of their own.
package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"modgoviya.io/modgoviya/internal/notification"
	"modgoviya.io/modgoviya/internal/pkg/worker"
	"modgoviya.io/modgoviya/internal/service"
)

// Server implements all API handlers.
type Server struct {
	auth   *service.AuthService
	mailer notification.Mailer
	pool   *pgxpool.Pool
	pools  *worker.Pools
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	Auth   *service.AuthService
	Mailer notification.Mailer
	Pool   *pgxpool.Pool // nil in tests; readiness then skips the DB check
	Pools  *worker.Pools // nil in tests; mail is then sent synchronously
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	mailer := deps.Mailer
	if mailer == nil {
		mailer = notification.LogMailer{}
	}
	return &Server{
		auth:   deps.Auth,
		mailer: mailer,
		pool:   deps.Pool,
		pools:  deps.Pools,
	}
}

// dispatch runs a task on the general worker pool when one is configured
// and inline otherwise, so handlers never block the request on mail
// delivery.
func (s *Server) dispatch(ctx context.Context, task worker.Task) {
	if s.pools != nil {
		if err := s.pools.SubmitDetached(task); err == nil {
			return
		}
		// Pool saturated or closed; fall through and run inline.
	}
	task(ctx)
}
