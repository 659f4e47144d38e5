package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
	"github.com/karrieremum/adminsvc/internal/admin/mailer"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/internal/admin/store/drivers/sqlite"
	"github.com/karrieremum/adminsvc/pkg/cryptox"
	"github.com/karrieremum/adminsvc/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// fakeMailer records sent invites and can be told to fail.
type fakeMailer struct {
	sent []mailer.Invite
	err  error
}

func (f *fakeMailer) SendInvite(_ context.Context, inv mailer.Invite) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, inv)
	return nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "service_test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testLinks() LinkConfig {
	return LinkConfig{
		ClientDomain: "https://app.example.com",
		AppName:      "KARRIERE.MUM AI",
		InviteTTL:    168 * time.Hour,
		MailLocale:   language.German,
	}
}

func newInviteService(t *testing.T) (*InviteService, *fakeMailer) {
	t.Helper()

	fm := &fakeMailer{}
	svc := &InviteService{
		Store:   newTestStore(t),
		Mailer:  fm,
		Metrics: metrics.Noop{},
		Links:   testLinks(),
	}
	return svc, fm
}

func TestInviteUser_Success(t *testing.T) {
	svc, fm := newInviteService(t)
	ctx := context.Background()
	adminID := idx.New()

	inviteID, err := svc.InviteUser(ctx, "neu@example.com", "Maria", adminID)
	require.NoError(t, err)
	assert.NotEmpty(t, inviteID)

	require.Len(t, fm.sent, 1)
	sent := fm.sent[0]
	assert.Equal(t, "neu@example.com", sent.Email)
	assert.Equal(t, "Maria", sent.Name)
	assert.Equal(t, "KARRIERE.MUM AI", sent.AppName)
	assert.Contains(t, sent.Link, "https://app.example.com/register?token=")
	assert.Equal(t, time.Now().UTC().Year(), sent.Year)

	// Stored invite carries the fingerprint of the emailed token, not the token
	token := sent.Link[len("https://app.example.com/register?token="):]
	inv, err := svc.Store.Invites().GetActiveInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	assert.Equal(t, inviteID, inv.ID)
	assert.Equal(t, adminID, inv.CreatedBy)
	assert.NotEqual(t, token, inv.TokenHash)
	assert.WithinDuration(t, time.Now().UTC().Add(168*time.Hour), inv.ExpiresAt, time.Minute)
}

func TestInviteUser_InvalidEmail(t *testing.T) {
	svc, fm := newInviteService(t)

	for _, email := range []string{"", "   ", "not-an-address"} {
		_, err := svc.InviteUser(context.Background(), email, "", idx.New())
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
	assert.Empty(t, fm.sent)
}

func TestInviteUser_ExistingUser(t *testing.T) {
	svc, fm := newInviteService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, svc.Store.Users().CreateUser(ctx, domain.User{
		ID:        idx.New(),
		Email:     "taken@example.com",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	_, err := svc.InviteUser(ctx, "taken@example.com", "", idx.New())
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Empty(t, fm.sent)
}

func TestInviteUser_MailFailure(t *testing.T) {
	svc, fm := newInviteService(t)
	fm.err = assert.AnError

	_, err := svc.InviteUser(context.Background(), "fail@example.com", "", idx.New())
	assert.ErrorIs(t, err, ErrInviteDispatchFailed)
}

func TestInviteUser_ResubmitMintsFreshToken(t *testing.T) {
	svc, fm := newInviteService(t)
	ctx := context.Background()

	_, err := svc.InviteUser(ctx, "again@example.com", "", idx.New())
	require.NoError(t, err)
	_, err = svc.InviteUser(ctx, "again@example.com", "", idx.New())
	require.NoError(t, err)

	require.Len(t, fm.sent, 2)
	assert.NotEqual(t, fm.sent[0].Link, fm.sent[1].Link)

	invites, err := svc.Store.Invites().ListInvitesByEmail(ctx, "again@example.com")
	require.NoError(t, err)
	assert.Len(t, invites, 2)
}
