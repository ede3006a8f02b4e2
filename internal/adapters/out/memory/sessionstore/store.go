// Package sessionstore keeps editing sessions in process memory, bounded by an
// LRU so abandoned sessions cannot grow the registry without limit.
package sessionstore

import (
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when no positive capacity is configured.
const DefaultCapacity = 1024

// Store is an LRU-bounded session registry. When full, adding a session evicts
// the least recently used one, and the evicted session is closed.
type Store struct {
	cache *lru.Cache[kernel.UUID, *session.Session]
}

// New creates a store holding at most capacity sessions.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	cache, err := lru.NewWithEvict[kernel.UUID, *session.Session](capacity, func(_ kernel.UUID, s *session.Session) {
		s.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Store{cache: cache}, nil
}

// Add registers s.
func (st *Store) Add(s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.cache.Add(s.ID(), s)
	return nil
}

// Get returns the session and marks it as recently used.
func (st *Store) Get(id kernel.UUID) (*session.Session, error) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", session.ErrSessionNotFound, id)
	}
	return s, nil
}

// Remove drops and closes the session.
func (st *Store) Remove(id kernel.UUID) {
	st.cache.Remove(id)
}

// List returns the registered sessions, oldest first.
func (st *Store) List() []*session.Session {
	return st.cache.Values()
}

// Len returns the number of registered sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}
