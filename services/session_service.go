package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	username  string
	expiresAt time.Time
}

// SessionStore maps opaque tokens to an admin identity with a TTL. It is
// injected into the handlers that guard admin routes.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Create issues a fresh token for username.
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{
		username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its identity. Expired tokens are dropped.
func (s *SessionStore) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	if time.Now().After(sess.expiresAt) {
		s.Destroy(token)
		return "", false
	}
	return sess.username, true
}

func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
