package session

import (
	"errors"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrSessionClosed is returned for any operation on a session that has ended.
	ErrSessionClosed = errors.New("editing session is closed")

	// ErrSessionNotFound is returned when no session is registered under an id.
	ErrSessionNotFound = errors.New("editing session not found")

	// ErrSessionIsNotConstructed is returned when a Session was not created through New.
	ErrSessionIsNotConstructed = errors.New("Session must be created via New constructor")
)

// Session holds one Draft and one Snapshot for the lifetime of an edit.
//
// Session follows these invariants:
//   - The draft and snapshot are only reachable while holding the session lock
//   - A closed session never reopens
//   - Operations on a closed session do not run
type Session struct {
	mu sync.Mutex

	id          kernel.UUID
	draft       *order.Draft
	snapshot    *catalog.Snapshot
	openedAt    time.Time
	lastTouched time.Time
	closed      bool

	isConstructed bool
}

// New opens a session around draft and snapshot.
//
// Business Rules:
//   - id must be a constructed UUID
//   - draft must be constructed
//   - snapshot is required; pass catalog.UnavailableSnapshot when the catalog failed to load
func New(id kernel.UUID, draft *order.Draft, snapshot *catalog.Snapshot, now time.Time) (*Session, error) {
	s := &Session{
		openedAt:      now,
		lastTouched:   now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setDraft(draft),
		s.setSnapshot(snapshot),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Session was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// OpenedAt returns when the session was opened.
func (s *Session) OpenedAt() time.Time {
	return s.openedAt
}

// Do runs fn with exclusive access to the draft and snapshot and marks the
// session as used at now.
func (s *Session) Do(now time.Time, fn func(draft *order.Draft, snapshot *catalog.Snapshot) error) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.lastTouched = now

	return fn(s.draft, s.snapshot)
}

// Finish is Do for the last operation of a session: when fn succeeds the
// session is closed before the lock is released, so nothing can run after it.
func (s *Session) Finish(now time.Time, fn func(draft *order.Draft, snapshot *catalog.Snapshot) error) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.lastTouched = now

	if err := fn(s.draft, s.snapshot); err != nil {
		return err
	}

	s.closed = true
	return nil
}

// Close ends the session. It reports whether the session was still open.
func (s *Session) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.closed = true
	return true
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// IdleSince returns the last time an operation ran on the session.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastTouched
}

// Expired reports whether the session has been idle for longer than ttl.
// A non-positive ttl never expires.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.IdleSince()) > ttl
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setDraft(draft *order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	s.draft = draft
	return nil
}

func (s *Session) setSnapshot(snapshot *catalog.Snapshot) error {
	if snapshot == nil {
		return errs.NewValueIsRequiredError("snapshot")
	}
	s.snapshot = snapshot
	return nil
}
