package commands

import (
	"orderdesk/internal/core/domain/model/kernel"
)

// sessionTarget is embedded by every command that acts on an open session.
type sessionTarget struct {
	sessionID kernel.UUID
}

// SessionID returns the session the command acts on.
func (t sessionTarget) SessionID() kernel.UUID {
	return t.sessionID
}

func (t *sessionTarget) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.sessionID = id
	return nil
}
