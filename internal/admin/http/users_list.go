package http

import (
	"net/http"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/i18n"
	"github.com/karrieremum/adminsvc/internal/admin/service"
	"github.com/karrieremum/adminsvc/pkg/adminsdk"
	"github.com/karrieremum/adminsvc/pkg/httpx"
	"github.com/karrieremum/adminsvc/pkg/slogx"
)

type UsersListHandler struct {
	UsersService *service.UsersService
}

// ServeHTTP godoc
//
//	@Summary		List Users Endpoint
//	@Description	Returns all registered users, newest first. Password material is never included. This is an admin-only operation.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		adminsdk.AdminUser			"id, name, email, role, createdAt"
//	@Failure		401	{object}	adminsdk.MessageResponse	"message"
//	@Failure		500	{object}	adminsdk.MessageResponse	"message"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [get].
func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	locale := i18n.ResolveTag(r)

	users, err := h.UsersService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, adminsdk.MessageResponse{
			Message: i18n.T(locale, i18n.KeyUsersListFailed),
		})
		return
	}

	// The body is the bare array; make([]..., 0, n) keeps an empty
	// directory serializing as [] rather than null.
	projected := make([]adminsdk.AdminUser, 0, len(users))
	for _, u := range users {
		projected = append(projected, adminsdk.AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, projected)
}
