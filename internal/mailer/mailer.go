package mailer

import (
	"context"

	"go.uber.org/zap"
)

// Sender is the notification sink. Delivery may fail per recipient;
// callers treat failures as best-effort.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender records notifications instead of delivering them. Real mail
// transport is owned by an external system.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("mailer")}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.log.Info("notification sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
