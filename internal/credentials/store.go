// Package credentials persists the client-side auth state: the access and
// refresh token pair plus the light/dark theme preference. It is the Go
// counterpart of the browser's localStorage keys "token", "refreshToken"
// and "theme".
package credentials

import "sync"

type Store interface {
	AccessToken() string
	RefreshToken() string
	// SetTokens stores a new access token. An empty refresh keeps the
	// previously stored refresh token.
	SetTokens(access, refresh string) error
	// Clear removes both tokens. The theme preference survives.
	Clear() error
	Theme() string
	SetTheme(theme string) error
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
	theme   string
}

func NewMemStore() *MemStore {
	return &MemStore{theme: "light"}
}

func (s *MemStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *MemStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *MemStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}

func (s *MemStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *MemStore) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
