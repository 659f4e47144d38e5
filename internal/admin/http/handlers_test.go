package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
	"github.com/karrieremum/adminsvc/internal/admin/mailer"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/service"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/internal/admin/store/drivers/sqlite"
	"github.com/karrieremum/adminsvc/pkg/httpx"
	"github.com/karrieremum/adminsvc/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

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

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "http_test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newInviteHandler(t *testing.T) (*InviteCreateHandler, *fakeMailer, store.Store) {
	t.Helper()

	st := newTestStore(t)
	fm := &fakeMailer{}
	h := &InviteCreateHandler{
		InviteService: &service.InviteService{
			Store:   st,
			Mailer:  fm,
			Metrics: metrics.Noop{},
			Links: service.LinkConfig{
				ClientDomain: "https://app.example.com",
				AppName:      "KARRIERE.MUM AI",
				InviteTTL:    168 * time.Hour,
				MailLocale:   language.German,
			},
		},
	}
	return h, fm, st
}

// asAdmin injects the authenticated admin user id the way AuthnMiddleware does.
func asAdmin(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), httpx.CtxKeyUserID, userID)
	return r.WithContext(ctx)
}

func TestInviteCreate_Success(t *testing.T) {
	h, fm, _ := newInviteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"neu@example.com","name":"Maria"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	// Only the confirmation text goes out; the invite record stays
	// server-side.
	assert.JSONEq(t, `{"message":"Einladung erfolgreich gesendet"}`, rec.Body.String())
	require.Len(t, fm.sent, 1)
	assert.Equal(t, "neu@example.com", fm.sent[0].Email)
}

func TestInviteCreate_SuccessEnglish(t *testing.T) {
	h, _, _ := newInviteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"neu@example.com"}`))
	req.Header.Set("Accept-Language", "en-US")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Invitation sent successfully"}`, rec.Body.String())
}

func TestInviteCreate_InvalidEmail(t *testing.T) {
	h, fm, _ := newInviteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"broken"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Ungültige E-Mail-Adresse"}`, rec.Body.String())
	assert.Empty(t, fm.sent)
}

func TestInviteCreate_MalformedBody(t *testing.T) {
	h, _, _ := newInviteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInviteCreate_DuplicateUser(t *testing.T) {
	h, fm, st := newInviteHandler(t)

	now := time.Now().UTC()
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
		ID:        idx.New(),
		Email:     "taken@example.com",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"taken@example.com"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Ein Benutzer mit dieser E-Mail existiert bereits"}`, rec.Body.String())
	assert.Empty(t, fm.sent)
}

func TestInviteCreate_MailFailure(t *testing.T) {
	h, fm, _ := newInviteHandler(t)
	fm.err = assert.AnError

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"fail@example.com"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Fehler beim Senden der Einladung"}`, rec.Body.String())
}

func TestInviteCreate_Unauthenticated(t *testing.T) {
	h, _, _ := newInviteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/invite",
		strings.NewReader(`{"email":"neu@example.com"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req) // no user id in context

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersList(t *testing.T) {
	st := newTestStore(t)
	h := &UsersListHandler{
		UsersService: &service.UsersService{Store: st, Metrics: metrics.Noop{}},
	}

	name := "Maria"
	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
		ID:        idx.New(),
		Name:      &name,
		Email:     "maria@example.com",
		Role:      domain.RoleAdmin,
		CreatedAt: base,
		UpdatedAt: base,
	}))
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
		ID:        idx.New(),
		Email:     "later@example.com",
		Role:      domain.RoleUser,
		CreatedAt: base.Add(time.Minute),
		UpdatedAt: base.Add(time.Minute),
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// bare array, no envelope
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), "["), "body should be a bare JSON array, got: %s", body)
	assert.Contains(t, body, `"createdAt"`)
	assert.Contains(t, body, `"maria@example.com"`)
	assert.Contains(t, body, `"ADMIN"`)
	assert.NotContains(t, body, "password")
	// newest first
	assert.Less(t, strings.Index(body, "later@example.com"), strings.Index(body, "maria@example.com"))
	// null name serialized as JSON null
	assert.Contains(t, body, `"name":null`)
}

func TestUsersList_EmptyDirectoryIsEmptyArray(t *testing.T) {
	st := newTestStore(t)
	h := &UsersListHandler{
		UsersService: &service.UsersService{Store: st, Metrics: metrics.Noop{}},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, asAdmin(req, idx.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestLivez(t *testing.T) {
	h := LivezHandler(time.Now(), "test")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestReadyz(t *testing.T) {
	st := newTestStore(t)
	h := ReadyzHandler(time.Now(), "test", st)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestReadyz_DegradedWhenDatabaseClosed(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Close())

	h := ReadyzHandler(time.Now(), "test", st)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"degraded"`)
	assert.Contains(t, body, `"database":"error:`)
}
