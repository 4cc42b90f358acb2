package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/aadhya/eduverse/config"
	"github.com/aadhya/eduverse/internal/domain"
)

const subjectPrefix = "[Contact Form] "

// Transport delivers composed messages. *gomail.Dialer implements it.
type Transport interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer turns contact form submissions into a single outbound email.
type Mailer struct {
	transport   Transport
	from        string
	contactTo   string
	contactName string
}

// NewDialer builds the SMTP transport from the mail settings.
func NewDialer(cfg config.MailConfig) *gomail.Dialer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	return d
}

// New creates a Mailer. The sender falls back to the SMTP username, which is
// the only address most providers accept.
func New(transport Transport, mail config.MailConfig, contact config.ContactConfig) *Mailer {
	from := mail.From
	if from == "" {
		from = mail.Username
	}
	return &Mailer{
		transport:   transport,
		from:        from,
		contactTo:   contact.Email,
		contactName: contact.Name,
	}
}

// SendContactEmail sends form to the configured contact address with
// Reply-To set to the submitter. Errors are *Error values.
func (m *Mailer) SendContactEmail(ctx context.Context, form domain.ContactForm) error {
	if err := ctx.Err(); err != nil {
		return newError(KindUnexpected, err)
	}

	msg := m.buildMessage(form)
	if err := m.transport.DialAndSend(msg); err != nil {
		merr := classify(err)
		zap.L().Error("contact email failed",
			zap.String("kind", merr.Kind.String()),
			zap.String("to", m.contactTo),
			zap.String("reply_to", form.Email),
			zap.Error(err))
		return merr
	}

	zap.L().Info("contact email sent",
		zap.String("to", m.contactTo),
		zap.String("reply_to", form.Email),
		zap.String("subject", form.Subject))
	return nil
}

func (m *Mailer) buildMessage(form domain.ContactForm) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.contactTo)
	msg.SetHeader("Reply-To", form.Email)
	msg.SetHeader("Subject", subjectPrefix+form.Subject)
	msg.SetBody("text/plain", m.FormatBody(form))
	return msg
}

// FormatBody renders the fixed plain-text template for a submission.
func (m *Mailer) FormatBody(form domain.ContactForm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission from %s website:\n\n", m.contactName)
	fmt.Fprintf(&b, "Name: %s\n", form.Name)
	fmt.Fprintf(&b, "Email: %s\n", form.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", form.Subject)
	b.WriteString("Message:\n")
	b.WriteString(form.Message)
	b.WriteString("\n\n")
	b.WriteString("---\n")
	b.WriteString("This email was sent from the contact form on your website.\n")
	b.WriteString("Please reply directly to this email to respond to the sender.")
	return b.String()
}
