package adminsdk

import "sync"

// Session represents an authenticated session against the admin service.
// It caches the user list until a mutation invalidates it, mirroring how the
// admin panel avoids refetching on every render.
type Session struct {
	client      *SDKClient
	accessToken string

	mu          sync.RWMutex
	users       []AdminUser
	usersCached bool
}

// AccessToken returns the token this session authenticates with.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// InvalidateUsers drops the cached user list. The next Users call fetches
// from the server.
func (s *Session) InvalidateUsers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.usersCached = false
}
