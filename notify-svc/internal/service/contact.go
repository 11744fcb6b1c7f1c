package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	textTemplate "text/template"
	"time"

	"qrmenu-platform/notify-svc/internal/domain"
)

const (
	adminHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p>You have received a new message from the contact form:</p>
  <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 8px; font-weight: bold;">Name:</td><td style="padding: 8px;">{{.Name}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Email:</td><td style="padding: 8px;">{{.Email}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Mobile:</td><td style="padding: 8px;">{{.Mobile}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Subject:</td><td style="padding: 8px;">{{.Subject}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold; vertical-align: top;">Message:</td><td style="padding: 8px; white-space: pre-line;">{{.Message}}</td></tr>
  </table>
  <p style="font-size: 12px; color: #718096;">You can reply directly to this email to respond to {{.Name}}.</p>
</div>`

	adminText = `New contact form submission:

Name: {{.Name}}
Email: {{.Email}}
Mobile: {{.Mobile}}
Subject: {{.Subject}}

Message:
{{.Message}}
`

	confirmHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Thank you for contacting {{.Brand}}!</h2>
  <p>Dear {{.Name}},</p>
  <p>We have received your message and our team will get back to you within 24-48 hours.</p>
  <div style="background-color: #f8fafc; border-left: 4px solid #10b981; padding: 12px; margin: 20px 0;">
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p style="white-space: pre-line;"><strong>Message:</strong><br>{{.Message}}</p>
  </div>
  <p style="font-size: 12px; color: #718096;">&copy; {{.Year}} {{.Brand}}. All rights reserved.</p>
</div>`

	confirmText = `Dear {{.Name}},

Thank you for reaching out to us. We have received your message and will get back to you within 24-48 hours.

Subject: {{.Subject}}
Message: {{.Message}}

Best regards,
The {{.Brand}} Team
`
)

var (
	adminHTMLTmpl   = template.Must(template.New("admin").Parse(adminHTML))
	adminTextTmpl   = textTemplate.Must(textTemplate.New("admin").Parse(adminText))
	confirmHTMLTmpl = template.Must(template.New("confirm").Parse(confirmHTML))
	confirmTextTmpl = textTemplate.Must(textTemplate.New("confirm").Parse(confirmText))
)

type renderer interface {
	Execute(w io.Writer, data interface{}) error
}

func render(tmpl renderer, view contactView) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return buf.String(), nil
}

// ContactNotifier forwards a contact submission to the site owner and sends
// the sender a confirmation.
type ContactNotifier struct {
	Mailer     Mailer
	AdminEmail string
	Brand      string
	now        func() time.Time
}

func NewContactNotifier(mailer Mailer, adminEmail, brand string) *ContactNotifier {
	return &ContactNotifier{Mailer: mailer, AdminEmail: adminEmail, Brand: brand, now: time.Now}
}

type contactView struct {
	domain.ContactMessage
	Brand string
	Year  int
}

func (n *ContactNotifier) Handle(ctx context.Context, event domain.Event) error {
	var msg domain.ContactMessage
	if err := json.Unmarshal(event.Payload, &msg); err != nil {
		return fmt.Errorf("%w: contact payload: %v", ErrMalformedEvent, err)
	}
	if strings.TrimSpace(msg.Email) == "" {
		return fmt.Errorf("%w: contact payload without email", ErrMalformedEvent)
	}

	admin, confirmation, err := n.Compose(msg)
	if err != nil {
		return err
	}
	if n.AdminEmail != "" {
		if err := n.Mailer.Send(ctx, admin); err != nil {
			return fmt.Errorf("%w: admin notification: %v", ErrDelivery, err)
		}
	}
	if err := n.Mailer.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("%w: confirmation to %s: %v", ErrDelivery, msg.Email, err)
	}
	return nil
}

// Compose renders the admin notification and the sender confirmation.
func (n *ContactNotifier) Compose(msg domain.ContactMessage) (domain.Email, domain.Email, error) {
	view := contactView{ContactMessage: msg, Brand: n.Brand, Year: n.now().Year()}

	var bodies [4]string
	for i, tmpl := range []renderer{adminHTMLTmpl, adminTextTmpl, confirmHTMLTmpl, confirmTextTmpl} {
		body, err := render(tmpl, view)
		if err != nil {
			return domain.Email{}, domain.Email{}, err
		}
		bodies[i] = body
	}

	admin := domain.Email{
		To:       n.AdminEmail,
		ReplyTo:  msg.Email,
		Subject:  "[Contact Form] " + msg.Subject,
		HTMLBody: bodies[0],
		TextBody: bodies[1],
	}
	confirmation := domain.Email{
		To:       msg.Email,
		ToName:   msg.Name,
		Subject:  "Thank you for contacting " + n.Brand,
		HTMLBody: bodies[2],
		TextBody: bodies[3],
	}
	return admin, confirmation, nil
}
