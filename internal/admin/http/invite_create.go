package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/karrieremum/adminsvc/internal/admin/i18n"
	"github.com/karrieremum/adminsvc/internal/admin/service"
	"github.com/karrieremum/adminsvc/pkg/adminsdk"
	"github.com/karrieremum/adminsvc/pkg/httpx"
	"github.com/karrieremum/adminsvc/pkg/slogx"
)

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invite User Endpoint
//	@Description	Sends an email invitation to the given address. The mail carries a one-time registration link. This is an admin-only operation.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.InviteRequest		true	"Invite request"
//	@Success		200		{object}	adminsdk.InviteResponse		"message"
//	@Failure		400		{object}	adminsdk.MessageResponse	"message"
//	@Failure		401		{object}	adminsdk.MessageResponse	"message"
//	@Failure		409		{object}	adminsdk.MessageResponse	"message - user already exists"
//	@Failure		500		{object}	adminsdk.MessageResponse	"message"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/invite [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	locale := i18n.ResolveTag(r)

	// Parse JSON request body
	var req adminsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.MessageResponse{
			Message: i18n.T(locale, i18n.KeyInvalidEmail),
		})
		return
	}

	// Get active user ID from context
	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, adminsdk.MessageResponse{
			Message: "Authentication required",
		})
		return
	}

	inviteID, err := h.InviteService.InviteUser(ctx, req.Email, req.Name, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.MessageResponse{
				Message: i18n.T(locale, i18n.KeyInvalidEmail),
			})
		case errors.Is(err, service.ErrUserAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, adminsdk.MessageResponse{
				Message: i18n.T(locale, i18n.KeyUserAlreadyExists),
			})
		default:
			log.Error("failed to invite user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, adminsdk.MessageResponse{
				Message: i18n.T(locale, i18n.KeyInviteSendFailed),
			})
		}
		return
	}

	// The invite record stays server-side; the body carries only the
	// confirmation text.
	log.Info("invite dispatched", "invite_id", inviteID)
	httpx.WriteJSON(w, http.StatusOK, adminsdk.InviteResponse{
		Message: i18n.T(locale, i18n.KeyInviteSent),
	})
}
