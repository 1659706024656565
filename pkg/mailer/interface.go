package mailer

import "context"

// IMailer sends templated messages over SMTP.
//
//go:generate mockery --name IMailer
type IMailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	BodyText string
	BodyHTML string
}
