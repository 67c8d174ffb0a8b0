// Package memory holds the single-process session store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// SessionStore is a lock-guarded map. Sessions are copied on the way in and
// out so callers never share a record.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Put(_ context.Context, key string, session *domain.Session) error {
	s.mu.Lock()
	s.sessions[key] = *session
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Get(_ context.Context, key string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionMissing
	}
	return &session, nil
}

func (s *SessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()
	return nil
}

// Prune drops every session expired at now and returns how many were removed.
func (s *SessionStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, session := range s.sessions {
		if session.ExpiredAt(now) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunJanitor prunes expired sessions every interval until ctx is done.
func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration, onPrune func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Prune(now); n > 0 && onPrune != nil {
				onPrune(n)
			}
		}
	}
}
