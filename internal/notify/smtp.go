package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SMTPSender sends emails through a plain SMTP relay. It is the fallback
// provider when the API-based sender is unconfigured or failing.
type SMTPSender struct {
	addr      string
	auth      smtp.Auth
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromEmail string
	FromName  string
}

// NewSMTPSender creates an SMTP email sender, or nil when no host is configured
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	if cfg.Host == "" {
		return nil
	}
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr:      fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:      auth,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (s *SMTPSender) Name() string {
	return "smtp"
}

// Send sends an email via the configured relay. net/smtp has no context
// support, so cancellation is checked before dialing only.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), s.fromEmail[strings.Index(s.fromEmail, "@")+1:])
	payload := s.buildPayload(msg, messageID)

	if err := smtp.SendMail(s.addr, s.auth, s.fromEmail, []string{msg.To}, payload); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	return messageID, nil
}

func (s *SMTPSender) buildPayload(msg Message, messageID string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.fromName), s.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML != "" {
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(msg.HTML)
	} else {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Body)
	}

	return []byte(b.String())
}
