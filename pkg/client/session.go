package client

import (
	"context"
	"sync"

	"hyperlocal/internal/generated/servers"
)

// TokenStore persists the bearer token between process runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the token for the life of the process.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// Session holds the current identity and active role.
//
// It is changed only by Client.Restore, Login, Register, Logout, SwitchRole and Refresh; readers
// always see a consistent token/user pair.
type Session struct {
	store TokenStore

	mu    sync.RWMutex
	token string
	user  *User
}

// NewSession with a nil store keeps the token in memory only.
func NewSession(store TokenStore) *Session {
	if store == nil {
		store = &MemoryTokenStore{}
	}
	return &Session{store: store}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Roles = append([]string(nil), s.user.Roles...)
	return &u
}

func (s *Session) ActiveRole() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ActiveRole
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// HasRole reports whether the signed-in user holds role, active or not.
func (s *Session) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range s.user.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *Session) begin(ctx context.Context, token string, u servers.User) error {
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &u
	return nil
}

func (s *Session) setUser(u servers.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

func (s *Session) end(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return s.store.Clear(ctx)
}

func (s *Session) load(ctx context.Context) (string, error) {
	token, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return token, nil
}
