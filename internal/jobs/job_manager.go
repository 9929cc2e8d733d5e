package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auditRetentionJob *AuditRetentionJob
	sessionSweepJob   *SessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(trimmer AuditLogTrimmer, sweeper SessionSweeper, logger *zap.Logger) *JobManager {
	return &JobManager{
		auditRetentionJob: NewAuditRetentionJob(trimmer, logger),
		sessionSweepJob:   NewSessionSweepJob(sweeper, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start audit retention job: %w", err)
	}

	if err := jm.sessionSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.auditRetentionJob.Stop()
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
	jm.auditRetentionJob.Stop()
}
