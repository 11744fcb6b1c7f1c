package storage

import (
	"context"
	"fmt"

	"qrmenu-platform/notify-svc/internal/domain"
	"qrmenu-platform/notify-svc/internal/service"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends mail through one SMTP account. gomail dials per call, so
// the mailer is safe to share.
type SMTPMailer struct {
	Dialer   Dialer
	From     string
	FromName string
	Domain   string
}

func NewSMTPMailer(host string, port int, user, pass, fromName string) *SMTPMailer {
	return &SMTPMailer{
		Dialer:   gomail.NewDialer(host, port, user, pass),
		From:     user,
		FromName: fromName,
		Domain:   host,
	}
}

func (m *SMTPMailer) Build(email domain.Email) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	if email.ToName != "" {
		msg.SetAddressHeader("To", email.To, email.ToName)
	} else {
		msg.SetHeader("To", email.To)
	}
	if email.ReplyTo != "" {
		msg.SetHeader("Reply-To", email.ReplyTo)
	}
	msg.SetHeader("Subject", email.Subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), m.Domain))
	if email.TextBody != "" {
		msg.SetBody("text/plain", email.TextBody)
		msg.AddAlternative("text/html", email.HTMLBody)
	} else {
		msg.SetBody("text/html", email.HTMLBody)
	}
	return msg
}

func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if email.To == "" {
		return fmt.Errorf("send %q: empty recipient", email.Subject)
	}
	if err := m.Dialer.DialAndSend(m.Build(email)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email.To, err)
	}
	return nil
}

var (
	_ service.Mailer = (*SMTPMailer)(nil)
	_ Dialer         = (*gomail.Dialer)(nil)
)
