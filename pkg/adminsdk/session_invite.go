package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// InviteUser asks the service to email an invitation. On success the cached
// user list is invalidated exactly once so the next Users call refetches.
func (s *Session) InviteUser(ctx context.Context, req InviteRequest) (InviteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return InviteResponse{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/admin/users/invite", bytes.NewReader(body))
	if err != nil {
		return InviteResponse{}, err
	}

	var inviteResp InviteResponse
	if err := decodeJSON(resp, &inviteResp, http.StatusOK); err != nil {
		return InviteResponse{}, err
	}

	s.InvalidateUsers()
	return inviteResp, nil
}
