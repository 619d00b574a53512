package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/config"
)

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <p>Hi {{.Name}},</p>
  <p>We received a request to reset your HireSphere password.</p>
  <p><a href="{{.Link}}" style="background:#2563eb;color:#fff;padding:10px 16px;border-radius:4px;text-decoration:none;">Reset password</a></p>
  <p>This link expires at {{.ExpiresAt}}. If you did not request it, ignore this email.</p>
</body>
</html>`))

type passwordResetData struct {
	Name      string
	Link      string
	ExpiresAt string
}

// dialer abstrai gomail.Dialer
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer implementa ports.Mailer usando gomail
type SMTPMailer struct {
	dialer dialer
	from   string
	logger ports.Logger
}

// NewSMTPMailer cria um mailer a partir da configuração SMTP
func NewSMTPMailer(cfg config.SMTPConfig, logger ports.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, resetLink string, expiresAt time.Time) error {
	msg, err := m.passwordResetMessage(to, name, resetLink, expiresAt)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send password reset email", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("password reset email sent", "to", to)
	return nil
}

func (m *SMTPMailer) passwordResetMessage(to, name, resetLink string, expiresAt time.Time) (*gomail.Message, error) {
	data := passwordResetData{
		Name:      name,
		Link:      resetLink,
		ExpiresAt: expiresAt.UTC().Format(time.RFC1123),
	}

	var html bytes.Buffer
	if err := passwordResetTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your HireSphere password")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nReset your password: %s\n\nThis link expires at %s.\n", data.Name, data.Link, data.ExpiresAt))
	msg.AddAlternative("text/html", html.String())
	return msg, nil
}

// LogMailer registra o link no log em vez de enviar email (desenvolvimento)
type LogMailer struct {
	logger ports.Logger
}

// NewLogMailer cria um LogMailer
func NewLogMailer(logger ports.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, _, resetLink string, expiresAt time.Time) error {
	m.logger.Warn("SMTP not configured, password reset link logged instead",
		"to", to,
		"link", resetLink,
		"expires_at", expiresAt,
	)
	return nil
}

// NewMailer escolhe SMTP quando configurado, senão LogMailer
func NewMailer(cfg config.SMTPConfig, logger ports.Logger) ports.Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg, logger)
	}
	return NewLogMailer(logger)
}
