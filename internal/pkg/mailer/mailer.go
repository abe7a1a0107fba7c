package mailer

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines the outbound mail capability the workflow depends on.
// Implementations must return an error on delivery failure; callers
// treat a failed send as a failed operation.
type Mailer interface {
	Send(msg Message) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPMailer sends plain-text mail through an SMTP relay.
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// Send delivers msg through the configured SMTP server. When no SMTP
// credentials are configured the message is logged instead of sent, so
// the workflow stays usable in development.
func (m *SMTPMailer) Send(msg Message) error {
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("SMTP credentials not configured - notification logged instead of sent")
		m.logger.Debug().Str("body", msg.Body).Msg("Notification body")
		return nil
	}

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	from := m.config.FromEmail
	if m.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail)
	}

	payload := "From: " + from + "\r\n" +
		"To: " + msg.To + "\r\n" +
		"Subject: " + msg.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + msg.Body

	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)
	err := smtp.SendMail(serverAddress, auth, m.config.FromEmail, []string{msg.To}, []byte(payload))
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Str("to", msg.To).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
