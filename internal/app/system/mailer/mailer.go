// internal/app/system/mailer/mailer.go

// Package mailer sends notification email over SMTP. When no SMTP host
// is configured the mailer is disabled and Send logs and drops messages,
// so local development works without a mail server.
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Email is one outbound message. TextBody is the fallback for clients
// that do not render HTML.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
}

// Mailer sends Email values through a gomail dialer.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	log    *zap.Logger
}

// New builds a Mailer. If cfg.Host is empty the mailer is disabled.
func New(cfg Config, logger *zap.Logger) *Mailer {
	m := &Mailer{cfg: cfg, log: logger}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	} else {
		logger.Warn("no SMTP host configured; outbound email disabled")
	}
	return m
}

// Enabled reports whether the mailer can actually send.
func (m *Mailer) Enabled() bool { return m.dialer != nil }

// Send delivers one email. Disabled mailers log the drop and return nil.
func (m *Mailer) Send(e Email) error {
	if m.dialer == nil {
		m.log.Info("email dropped (mailer disabled)",
			zap.String("to", e.To),
			zap.String("subject", e.Subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromAddr))
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		msg.AddAlternative("text/html", e.HTMLBody)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", e.To, err)
	}
	return nil
}
