package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Sender delivers a notification email through one provider. Implementations
// can be swapped or chained without changing callers.
type Sender interface {
	// Name identifies the provider in dispatch results and logs
	Name() string
	// Send delivers the message and returns a provider-assigned message id
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents an email to be sent
type Message struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	Body    string // Plain text body
	HTML    string // Optional HTML body
}

// SendGridSender sends emails via the SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// SendGridConfig holds configuration for SendGrid
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a SendGrid email sender, or nil when no API key
// is configured
func NewSendGridSender(cfg SendGridConfig, logger *zap.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (s *SendGridSender) Name() string {
	return "sendgrid"
}

// Send sends an email via SendGrid
func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	body := msg.Body
	html := msg.HTML
	if html == "" {
		html = msg.Body
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, body, html)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode),
			zap.String("to", msg.To),
		)
		return "", fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	messageID := response.Headers["X-Message-Id"]
	if len(messageID) > 0 {
		return messageID[0], nil
	}
	return "", nil
}
