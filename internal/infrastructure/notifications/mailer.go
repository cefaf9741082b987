package notifications

import (
	"errors"
	"fmt"
	"net/smtp"

	"farm-market.backend/internal/config"
)

// Mailer sends HTML email
type Mailer interface {
	Send(to, subject, html string) error
}

// SMTPMailer sends email over plain SMTP auth
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewSMTPMailer creates a mailer from config
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: cfg.FromEmail,
	}
}

// Send sends an email with HTML content
func (m *SMTPMailer) Send(to, subject, html string) error {
	if m.host == "" || m.port == "" || m.username == "" || m.password == "" {
		return errors.New("email transport not configured")
	}

	headers := fmt.Sprintf("From: Farm Market <%s>\nTo: %s\nSubject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n",
		m.fromEmail, to, subject)
	message := []byte(headers + html)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.fromEmail, []string{to}, message)
}
