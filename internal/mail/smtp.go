package mail

import (
	"fmt"
	"net/smtp"
)

// SMTPConfig holds the delivery settings. Host empty means SMTP delivery is
// disabled.
type SMTPConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	From         string
	To           string
	AuthDisabled bool
}

// Sender delivers report text over SMTP.
type Sender struct {
	cfg SMTPConfig
}

func NewSender(cfg SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Enabled reports whether delivery is configured.
func (s *Sender) Enabled() bool {
	return s != nil && s.cfg.Host != "" && s.cfg.From != "" && s.cfg.To != ""
}

// Send delivers the report body with the given subject. The report is sent
// as the message text; there is no attachment.
func (s *Sender) Send(subject, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp delivery is not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.cfg.From, s.cfg.To, subject, body)

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if !s.cfg.AuthDisabled {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{s.cfg.To}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
