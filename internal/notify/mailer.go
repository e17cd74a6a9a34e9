package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/adaskevich/tasktracker/internal/config"
)

// Message is one outgoing mail.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string // HTML
}

// Mailer sends a single HTML message.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers messages over SMTP with STARTTLS. When the transport
// configuration is incomplete, Send is a silent no-op: partial configuration
// disables mail without breaking the app.
type SMTPMailer struct {
	cfg config.MailConfig
	log zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg config.MailConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send delivers the message, or skips it when mail is not configured.
func (m *SMTPMailer) Send(msg Message) error {
	if !m.cfg.Complete() {
		m.log.Debug().Str("to", msg.To).Msg("mail transport not configured, skipping notification")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp server: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("failed to start tls: %w", err)
	}
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	payload := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s",
		msg.From, msg.To, msg.Subject, msg.Body)
	if _, err := writer.Write([]byte(payload)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("failed to close smtp session: %w", err)
	}

	m.log.Info().Str("to", msg.To).Msg("mail sent successfully")
	return nil
}
