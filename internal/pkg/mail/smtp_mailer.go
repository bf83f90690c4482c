package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/vantascaling/website/internal/pkg/config"
)

// Mailer sends HTML email via SMTP. It holds its configuration explicitly;
// nothing here reads the environment.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates a Mailer from the given SMTP settings.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	if cfg.Sender == "" {
		cfg.Sender = "no-reply@localhost"
		log.Printf("SMTP sender not set, using default sender: %s", cfg.Sender)
	}
	return &Mailer{cfg: cfg}
}

// Send delivers one HTML mail to a single recipient.
func (m *Mailer) Send(to string, subject string, body string) error {
	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.cfg.Sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, m.cfg.Sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}
