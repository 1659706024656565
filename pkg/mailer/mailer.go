package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type implMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates an SMTP-backed IMailer.
func New(cfg Config) IMailer {
	return &implMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a single message. The context is accepted for interface
// symmetry; gomail does not support cancellation mid-dial.
func (m *implMailer) Send(_ context.Context, msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.BodyText)
	if msg.BodyHTML != "" {
		mail.AddAlternative("text/html", msg.BodyHTML)
	}

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}
