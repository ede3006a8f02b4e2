// Package jobs provides scheduled background tasks for orderdesk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SessionExpiryJob runs ExpireSessionsCommand on the SESSION_SWEEP_SCHEDULE
// (default: every minute). Open sessions idle for longer than SESSION_TTL are
// closed; sessions that already ended by save, discard or eviction are dropped
// from the registry.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireSessionsHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use the six-field format with a leading seconds field, so
// "0 * * * * *" and "@every 30s" are both accepted.
package jobs
