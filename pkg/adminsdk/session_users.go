package adminsdk

import (
	"context"
	"net/http"
)

// Users returns the user list, newest first. Results are cached on the
// Session; a successful InviteUser call or an explicit InvalidateUsers
// triggers a refetch on the next call.
func (s *Session) Users(ctx context.Context) ([]AdminUser, error) {
	s.mu.RLock()
	if s.usersCached {
		users := make([]AdminUser, len(s.users))
		copy(users, s.users)
		s.mu.RUnlock()
		return users, nil
	}
	s.mu.RUnlock()

	return s.RefreshUsers(ctx)
}

// RefreshUsers fetches the user list from the server, bypassing and
// repopulating the cache.
func (s *Session) RefreshUsers(ctx context.Context) ([]AdminUser, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var fetched []AdminUser
	if err := decodeJSON(resp, &fetched, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.users = fetched
	s.usersCached = true
	s.mu.Unlock()

	users := make([]AdminUser, len(fetched))
	copy(users, fetched)
	return users, nil
}
