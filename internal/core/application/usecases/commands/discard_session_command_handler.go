package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"
)

// DiscardSessionCommandHandler closes a session without saving. The closed
// session stays registered until the next expiry sweep so late requests get
// session.ErrSessionClosed.
type DiscardSessionCommandHandler struct {
	store ports.SessionStore
}

// NewDiscardSessionCommandHandler creates a handler for discarding sessions.
func NewDiscardSessionCommandHandler(store ports.SessionStore) DiscardSessionCommandHandler {
	return DiscardSessionCommandHandler{store: store}
}

// Handle closes the session.
func (h DiscardSessionCommandHandler) Handle(_ context.Context, cmd DiscardSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	if !s.Close() {
		return session.ErrSessionClosed
	}
	return nil
}
