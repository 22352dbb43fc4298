package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mk-watch-mods/models"
)

type sessionEntry struct {
	session  *models.Session
	lastSeen time.Time
}

// SessionStore keeps each visitor's state isolated, keyed by session id
type SessionStore struct {
	mu                sync.Mutex
	sessions          map[string]*sessionEntry
	defaultCollection string
	now               func() time.Time
}

// NewSessionStore creates a store whose new sessions start on defaultCollection
func NewSessionStore(defaultCollection string) *SessionStore {
	return &SessionStore{
		sessions:          make(map[string]*sessionEntry),
		defaultCollection: defaultCollection,
		now:               time.Now,
	}
}

// GetOrCreate returns the session for id, creating a fresh one when id is unknown.
// created reports whether a new session (with a new id) was made.
func (s *SessionStore) GetOrCreate(id string) (sess *models.Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id != "" {
		if entry, ok := s.sessions[id]; ok {
			entry.lastSeen = now
			return entry.session, false
		}
	}

	sess = models.NewSession(uuid.NewString(), s.defaultCollection)
	s.sessions[sess.ID] = &sessionEntry{session: sess, lastSeen: now}
	return sess, true
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were removed
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
