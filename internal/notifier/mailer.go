package notifier

import (
	"context"
	"errors"
	"strings"
	"time"

	"sundar_marbles/internal/config"

	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = errors.New("mailer is not configured")

// Mailer delivers notification emails over SMTP.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// SMTPMailer sends plain-text mail to the operator inbox configured in
// SMTPConfig.NotifyTo.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	if strings.TrimSpace(m.cfg.Host) == "" {
		return ErrMailerDisabled
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.NotifyTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// DialAndSend has no context support; bound it ourselves so a hung
	// mail server cannot pin a worker forever.
	wait := 30 * time.Second
	if dl, ok := ctx.Deadline(); ok {
		if remain := time.Until(dl); remain > 0 && remain < wait {
			wait = remain
		}
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}
