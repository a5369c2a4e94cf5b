package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory table of live sessions keyed by session ID.
// Sessions never expire; they end on Delete or when the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]string)}
}

// Add registers an authenticated session and returns its ID.
func (s *Store) Add(sess Session) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess.userName
	s.mu.Unlock()
	return id
}

// Get resolves a session ID. Unknown IDs resolve to Anonymous.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	name, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Anonymous(), false
	}
	return Authenticated(name), true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// DeleteUser ends every session of the entity, e.g. after its account is
// deleted or its password reset.
func (s *Store) DeleteUser(userName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, name := range s.sessions {
		if name == userName {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
