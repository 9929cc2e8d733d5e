// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the marketplace needs.
//
// # Available Jobs
//
// 1. AuditRetentionJob - Runs hourly to drop audit entries beyond the retention limit
// 2. SessionSweepJob - Runs every minute to evict expired farmer sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with its collaborators
//	jobManager := jobs.NewJobManager(auditTrimmer, sessionStore, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit trim also runs inline on every append, so the hourly job is a
// safety net rather than the primary enforcement. Session sweeping is purely
// opportunistic; expired sessions are also rejected lazily on resolve.
package jobs
