// Package mailer delivers transactional email (one-time codes).
package mailer

import (
	"bytes"
	"context"
	"html/template"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"shopapi/internal/config"
)

const senderName = "E-Commerce"

// Message is a single HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends a message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP mailer, or a logging mailer when no SMTP host is configured.
func New(cfg config.SMTPConfig, lg *zap.Logger) (Mailer, error) {
	if cfg.Host == "" {
		return &LogMailer{lg: lg}, nil
	}
	return NewSMTP(cfg)
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTP(cfg config.SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	cli, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}
	return &SMTPMailer{client: cli, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := mail.NewMsg()
	if err := out.FromFormat(senderName, m.from); err != nil {
		return errors.Wrap(err, "set from")
	}
	if err := out.To(msg.To); err != nil {
		return errors.Wrap(err, "set to")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	lg *zap.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.lg.Info("mail_not_sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("reason", "smtp disabled"),
	)
	return nil
}

// Async sends in the background and logs failures. Wait blocks until all
// pending sends have finished.
type Async struct {
	next    Mailer
	lg      *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsync(next Mailer, lg *zap.Logger) *Async {
	return &Async{next: next, lg: lg, timeout: 30 * time.Second}
}

// Send never returns an error; delivery failures are only logged.
func (a *Async) Send(ctx context.Context, msg Message) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()
		if err := a.next.Send(sendCtx, msg); err != nil {
			a.lg.Error("mail_send_failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
		}
	}()
	return nil
}

func (a *Async) Wait() { a.wg.Wait() }

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  <p>Hi {{.Name}},</p>
  <p>Your verification code is:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
  <p>The code expires in {{.Minutes}} minutes. If you did not request it, ignore this email.</p>
</body>
</html>`))

// RenderOTP renders the one-time code email body.
func RenderOTP(name, subject, code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, map[string]any{
		"Name":    name,
		"Subject": subject,
		"Code":    code,
		"Minutes": int(ttl.Minutes()),
	})
	if err != nil {
		return "", errors.Wrap(err, "render otp email")
	}
	return buf.String(), nil
}
