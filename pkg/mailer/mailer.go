package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	log "github.com/sirupsen/logrus"

	"github.com/sharemitra/sharemitra-backend/internal/config"
)

// Mailer sends transactional email
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay
type SMTPMailer struct {
	addr string
	host string
	user string
	pass string
	from string
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		host: cfg.SMTP.Host,
		user: cfg.SMTP.User,
		pass: cfg.SMTP.Pass,
		from: cfg.SMTP.From,
	}
}

// Send sends a plain-text email
func (m *SMTPMailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return e.Send(m.addr, auth)
}

// MockMailer logs instead of sending, for local development and tests
type MockMailer struct{}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send logs the message and reports success
func (m *MockMailer) Send(to, subject, body string) error {
	log.WithFields(log.Fields{"to": to, "subject": subject}).Debug("mock mail sent")
	return nil
}
