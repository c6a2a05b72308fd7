// Package session holds the currently authenticated identity, if any.
package session

import (
	"log/slog"
	"sync"

	"github.com/mmcdole/kutubxona/internal/domain"
)

// Store holds at most one identity. It records the role claim but does not
// enforce it; callers check User.IsAdmin themselves.
type Store struct {
	mu      sync.RWMutex
	current *domain.User
	logger  *slog.Logger
}

// New creates an anonymous Store
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Login makes user the current identity, replacing any previous one
func (s *Store) Login(user domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.logger.Debug("replacing session", "previous", s.current.Email)
	}
	u := user
	s.current = &u
	s.logger.Info("logged in", "email", user.Email, "role", user.Role)
	return u
}

// Logout clears the current identity
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.logger.Info("logged out", "email", s.current.Email)
	}
	s.current = nil
}

// Current returns the active identity
func (s *Store) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether anyone is logged in
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
