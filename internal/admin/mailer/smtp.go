package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/karrieremum/adminsvc/pkg/slogx"
	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	// Insecure downgrades TLS to opportunistic. Only for local relays.
	Insecure bool
}

// SMTPMailer delivers mail over SMTP using go-mail.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (s *SMTPMailer) SendInvite(ctx context.Context, inv Invite) error {
	log := slogx.FromContext(ctx)

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if inv.Name != "" {
		if err := m.AddToFormat(inv.Name, inv.Email); err != nil {
			return fmt.Errorf("invalid to address: %w", err)
		}
	} else {
		if err := m.To(inv.Email); err != nil {
			return fmt.Errorf("invalid to address: %w", err)
		}
	}
	m.Subject(Subject(inv))

	htmlBody, err := RenderHTML(inv)
	if err != nil {
		return fmt.Errorf("render invite mail: %w", err)
	}

	// Text fallback + HTML alternative
	m.SetBodyString(mail.TypeTextPlain, RenderText(inv))
	m.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	tlsPolicy := mail.TLSMandatory
	if s.cfg.Insecure {
		tlsPolicy = mail.TLSOpportunistic
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client init: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		log.Error("smtp send failed",
			"host", s.cfg.Host,
			"to", inv.Email,
			"error", err,
		)
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Info("invite mail sent", "to", inv.Email)
	return nil
}
