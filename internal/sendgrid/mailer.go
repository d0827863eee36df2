package sendgrid

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const subject = "Hacker News Daily Digest"

// statusAccepted is the status SendGrid returns for an accepted message.
const statusAccepted = 202

// Sender submits a composed message to the mail provider. *sendgrid.Client
// satisfies it; tests substitute a fake.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Mailer implements domain.Notifier on top of the SendGrid v3 mail send API.
type Mailer struct {
	sender Sender
	from   string
	to     string
	logger *slog.Logger
}

// NewMailer creates a Mailer that sends digests from the given sender
// address to the given recipient, authenticated with the API key.
func NewMailer(apiKey, from, to string, logger *slog.Logger) *Mailer {
	return &Mailer{
		sender: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
		logger: logger,
	}
}

// Send submits the document as the HTML body of a single email. Any response
// other than 202 Accepted is a delivery failure.
func (m *Mailer) Send(ctx context.Context, html string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", m.from),
		subject,
		mail.NewEmail("", m.to),
		"",
		html,
	)

	resp, err := m.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send digest email: %w", err)
	}
	if resp.StatusCode != statusAccepted {
		return fmt.Errorf("send digest email: provider returned status %d", resp.StatusCode)
	}

	m.logger.Info("digest email sent", "to", m.to)
	return nil
}
