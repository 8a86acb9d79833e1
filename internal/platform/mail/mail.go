// Package mail stands in for outbound e-mail. Messages are written to the log
// instead of being delivered, which is enough for development and tests.
package mail

import (
	"context"
	"log/slog"
)

// LogMailer records password reset links through slog.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer. A nil logger means slog.Default().
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

// SendPasswordReset logs the reset link for to.
func (m *LogMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	m.logger.InfoContext(ctx, "password reset email not delivered: no mail transport configured",
		"to", to,
		"reset_url", link,
	)
	return nil
}
