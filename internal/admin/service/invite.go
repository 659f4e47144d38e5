package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
	"github.com/karrieremum/adminsvc/internal/admin/mailer"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/pkg/cryptox"
	"github.com/karrieremum/adminsvc/pkg/idx"
	"github.com/karrieremum/adminsvc/pkg/slogx"
	"golang.org/x/text/language"
)

var (
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrInviteDispatchFailed = errors.New("failed to dispatch invite email")
)

// LinkConfig carries the pieces needed to build and brand the registration
// link sent in invitation mails.
type LinkConfig struct {
	ClientDomain string // base URL of the client app, no trailing slash
	AppName      string
	InviteTTL    time.Duration
	MailLocale   language.Tag
}

type InviteService struct {
	Store   store.Store
	Mailer  mailer.Mailer
	Metrics metrics.Collector
	Links   LinkConfig
}

// InviteUser mints an invite for the given address and dispatches the
// invitation email. Returns the invite id on success. The raw token never
// leaves this function except inside the emailed link.
func (s *InviteService) InviteUser(ctx context.Context, email, name, createdBy string) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the address. Full RFC validation is left to the mail
	// layer; this catches the obviously broken input early.
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		log.Warn("invite requested with invalid email")
		s.Metrics.RecordInviteRejected("invalid_email")
		return "", ErrInvalidEmail
	}

	// 2. Reject addresses that already have an account.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("invite requested for existing user", slog.String("email", email))
		s.Metrics.RecordInviteRejected("user_exists")
		return "", ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing user", slog.Any("error", err))
		return "", err
	}

	// 3. Generate random token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return "", err
	}

	// 4. Fingerprint and store the invite.
	now := time.Now().UTC()
	invite := domain.Invite{
		ID:        idx.New(),
		TokenHash: cryptox.FingerprintToken(token),
		Email:     email,
		Name:      strings.TrimSpace(name),
		CreatedBy: createdBy,
		ExpiresAt: now.Add(s.Links.InviteTTL),
		Used:      false,
		UsedBy:    "",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().CreateInvite(ctx, invite); err != nil {
			log.Error("failed to create invite",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	// 5. Build the registration link carrying the raw token.
	link := s.Links.ClientDomain + "/register?token=" + url.QueryEscape(token)

	// 6. Dispatch the invitation mail.
	err = s.Mailer.SendInvite(ctx, mailer.Invite{
		Email:   email,
		Name:    invite.Name,
		AppName: s.Links.AppName,
		Link:    link,
		Year:    now.Year(),
		Locale:  s.Links.MailLocale,
	})
	if err != nil {
		log.Error("failed to send invite mail",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		s.Metrics.RecordInviteFailed()
		return "", ErrInviteDispatchFailed
	}

	s.Metrics.RecordInviteSent()
	log.Info("invite sent",
		slog.String("invite_id", invite.ID),
		slog.String("email", email),
		slog.String("created_by", createdBy),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return invite.ID, nil
}
