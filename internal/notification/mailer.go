// Package notification hands single-use tokens to the delivery channel.
// Actual email delivery belongs to the platform mailer, a separate system;
// this package defines the seam and a development implementation.
package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"modgoviya.io/modgoviya/internal/pkg/logger"
)

// Mailer delivers account tokens to their owner's email address.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time)
	SendEmailVerification(ctx context.Context, email, token string, expiresAt time.Time)
}

// LogMailer is the development Mailer: it logs that a delivery would
// happen without logging the token itself.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) {
	logger.Info("Password reset token issued",
		zap.String("email", email),
		zap.Time("expires_at", expiresAt),
	)
}

func (LogMailer) SendEmailVerification(ctx context.Context, email, token string, expiresAt time.Time) {
	logger.Info("Email verification token issued",
		zap.String("email", email),
		zap.Time("expires_at", expiresAt),
	)
}
