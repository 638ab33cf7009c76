package api

import (
	"errors"
	"sync"
	"time"

	"tabboz/internal/game"
	"tabboz/internal/metrics"

	"github.com/google/uuid"
)

var (
	errSessionNotFound = errors.New("session not found")
	errTooManySessions = errors.New("too many active sessions")
)

// session serialises requests against one game; the game core itself is
// single-threaded.
type session struct {
	mu       sync.Mutex
	cellular *game.Cellular
	lastUsed time.Time
}

// sessionStore holds at most max sessions. Sessions untouched for idle are
// evicted; idle <= 0 keeps them until deleted.
type sessionStore struct {
	mu    sync.Mutex
	max   int
	idle  time.Duration
	now   func() time.Time
	items map[uuid.UUID]*session
}

func newSessionStore(max int, idle time.Duration) *sessionStore {
	return &sessionStore{max: max, idle: idle, now: time.Now, items: make(map[uuid.UUID]*session)}
}

func (s *sessionStore) create(c *game.Cellular) (uuid.UUID, *session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.items) >= s.max {
		s.evictLocked()
	}
	if s.max > 0 && len(s.items) >= s.max {
		return uuid.Nil, nil, errTooManySessions
	}
	id := uuid.New()
	sess := &session{cellular: c, lastUsed: s.now()}
	s.items[id] = sess
	metrics.ActiveSessions.Set(float64(len(s.items)))
	return id, sess, nil
}

func (s *sessionStore) get(id uuid.UUID) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if ok {
		sess.lastUsed = s.now()
	}
	return sess, ok
}

func (s *sessionStore) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	metrics.ActiveSessions.Set(float64(len(s.items)))
	return true
}

// evictIdle drops idle sessions and returns how many went.
func (s *sessionStore) evictIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked()
}

func (s *sessionStore) evictLocked() int {
	if s.idle <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idle)
	n := 0
	for id, sess := range s.items {
		if sess.lastUsed.Before(cutoff) {
			delete(s.items, id)
			n++
		}
	}
	if n > 0 {
		metrics.ActiveSessions.Set(float64(len(s.items)))
	}
	return n
}
