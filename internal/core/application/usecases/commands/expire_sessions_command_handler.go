package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/ports"
)

// ExpireSessionsCommandHandler removes ended sessions from the registry and
// closes and removes open ones idle for longer than the TTL.
//
// Example:
//
//	handler := NewExpireSessionsCommandHandler(store, 30*time.Minute, logger)
//	expired, err := handler.Handle(ctx, NewExpireSessionsCommand())
type ExpireSessionsCommandHandler struct {
	store  ports.SessionStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewExpireSessionsCommandHandler creates a handler for session sweeps.
// A non-positive ttl only clears sessions that already ended.
func NewExpireSessionsCommandHandler(store ports.SessionStore, ttl time.Duration, logger *slog.Logger) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "expire_sessions_handler"),
	}
}

// Handle sweeps the registry and returns how many open sessions were expired.
func (h ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now()
	expired := 0

	for _, s := range h.store.List() {
		if s.Closed() {
			h.store.Remove(s.ID())
			continue
		}

		if !s.Expired(now, h.ttl) {
			continue
		}

		if s.Close() {
			expired++
			h.logger.InfoContext(ctx, "session expired",
				"session_id", s.ID().String(),
				"idle_since", s.IdleSince(),
			)
		}
		h.store.Remove(s.ID())
	}

	return expired, nil
}
