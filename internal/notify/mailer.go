package notify

import (
	"context"

	"go-gin-attendance-log/pkg/logger"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers account emails (password reset, verification).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of sending them; it is used
// when no mail relay is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer() *LogMailer {
	return &LogMailer{log: logger.WithComponent("mailer")}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.Info("mail queued",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
