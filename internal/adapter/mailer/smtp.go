package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"newsbrief/config"
)

// SMTPSender delivers digests over SMTP with STARTTLS. Credentials come
// from environment variables named in the config, never from the config
// file itself.
type SMTPSender struct {
	host       string
	port       int
	from       string
	password   string
	recipients []string
}

func NewSMTPSender(cfg config.EmailConfig) (*SMTPSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host not configured")
	}
	if len(cfg.Recipients) == 0 {
		return nil, fmt.Errorf("no recipients configured")
	}

	from := os.Getenv(cfg.FromEnv)
	if from == "" {
		return nil, fmt.Errorf("sender address not found in environment variable: %s", cfg.FromEnv)
	}
	password := os.Getenv(cfg.PasswordEnv)
	if password == "" {
		return nil, fmt.Errorf("sender password not found in environment variable: %s", cfg.PasswordEnv)
	}

	return &SMTPSender{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		from:       from,
		password:   password,
		recipients: cfg.Recipients,
	}, nil
}

// Send mails the HTML body to all recipients in one message.
func (s *SMTPSender) Send(subject, htmlBody string) error {
	msg := buildMessage(s.from, s.recipients, subject, htmlBody)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.from, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.from, s.recipients, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 message with an HTML body.
func buildMessage(from string, to []string, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}
