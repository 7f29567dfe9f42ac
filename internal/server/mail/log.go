package mail

import (
	"context"

	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/google/uuid"
)

// LogMailer only records that a message would have been sent. Used when no
// mail endpoint is configured. Bodies carry share links and are not logged.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("module", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, _ string) (string, error) {
	id := "log-" + uuid.NewString()
	m.logger.Info(ctx, "mail not sent, no endpoint configured", "to", to, "subject", subject, "message_id", id)
	return id, nil
}
