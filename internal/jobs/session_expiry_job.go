package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionSweepSchedule runs the sweep at the start of every minute.
const DefaultSessionSweepSchedule = "0 * * * * *"

// SessionSweeper is satisfied by commands.ExpireSessionsCommandHandler.
type SessionSweeper interface {
	Handle(ctx context.Context, cmd commands.ExpireSessionsCommand) (int, error)
}

// SessionExpiryJob periodically closes idle editing sessions and drops ended
// ones from the registry.
type SessionExpiryJob struct {
	handler  SessionSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the job. The schedule uses the six-field cron
// format with seconds; an empty schedule falls back to DefaultSessionSweepSchedule.
func NewSessionExpiryJob(handler SessionSweeper, schedule string, logger *slog.Logger) *SessionExpiryJob {
	if schedule == "" {
		schedule = DefaultSessionSweepSchedule
	}
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid session sweep schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *SessionExpiryJob) Run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired idle sessions", "count", expired)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
