// Package email renders and delivers the transactional emails of the account flows.
package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

var (
	ErrInvalidConfig     = errors.New("email: invalid configuration")
	ErrInvalidMessage    = errors.New("email: invalid message")
	ErrFailedToSendEmail = errors.New("email: failed to send")
)

// Message is one outgoing email.
type Message struct {
	To       string
	Subject  string
	Tag      string
	HTMLBody string
}

// Validate checks the fields every sender requires.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" || strings.TrimSpace(m.Subject) == "" || m.HTMLBody == "" {
		return ErrInvalidMessage
	}

	return nil
}

// Sender delivers a rendered message.
type Sender interface {
	SendEmail(ctx context.Context, msg Message) error
}

// logSender stands in for a real provider when email is disabled.
// Only metadata is logged: bodies carry reset tokens.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender returns a Sender that records messages in the log instead of sending them.
func NewLogSender(logger *slog.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Email delivery disabled, message not sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("tag", msg.Tag),
	)

	return nil
}
