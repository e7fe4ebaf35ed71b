package memcache

import (
	"sync"
	"time"
)

// RefreshTokenStore holds at most one refresh token per user. A new login or
// refresh overwrites the slot wholesale, so a second device evicts the first.
type RefreshTokenStore interface {
	Set(userID uint, token string, ttl time.Duration)

	// Get returns the currently stored token for the user, or "" if the slot
	// is empty or expired.
	Get(userID uint) string

	Delete(userID uint)
}

type tokenEntry struct {
	token     string
	expiresAt time.Time
}

type RefreshTokens struct {
	mu   sync.RWMutex
	data map[uint]tokenEntry
}

func NewRefreshTokens() *RefreshTokens {
	return &RefreshTokens{
		data: make(map[uint]tokenEntry),
	}
}

func (s *RefreshTokens) Set(userID uint, token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = tokenEntry{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RefreshTokens) Get(userID uint) string {
	s.mu.RLock()
	e, ok := s.data[userID]
	s.mu.RUnlock()
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(userID)
		return ""
	}
	return e.token
}

func (s *RefreshTokens) Delete(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
