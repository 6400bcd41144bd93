// Package session holds server-side sessions in memory, keyed by the opaque
// identifier carried in the client cookie.
package session

import (
	"sync"
	"time"

	"foodserver/auth/users"

	"github.com/google/uuid"
)

type Session struct {
	ID        uuid.UUID
	User      users.User
	ExpiresAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[uuid.UUID]Session

	now func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[uuid.UUID]Session),
		now:      time.Now,
	}
}

func (s *Store) Create(user users.User) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{
		ID:        uuid.New(),
		User:      user,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Get(id uuid.UUID) (users.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return users.User{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return users.User{}, false
	}
	return sess.User, true
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// DeleteUser drops every session belonging to the user, used when the
// account itself is removed.
func (s *Store) DeleteUser(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.User.ID == userID {
			delete(s.sessions, id)
		}
	}
}
