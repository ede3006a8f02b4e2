package ports

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
)

// SessionStore is the registry of editing sessions. Closed sessions may stay
// registered until removed so late requests can be told the session ended.
type SessionStore interface {
	// Add registers a session. The registry may evict its least recently used
	// entry to make room; an evicted session is closed.
	Add(s *session.Session) error

	// Get returns the session registered under id or session.ErrSessionNotFound.
	Get(id kernel.UUID) (*session.Session, error)

	// Remove drops the session from the registry and closes it.
	Remove(id kernel.UUID)

	// List returns every registered session.
	List() []*session.Session
}
