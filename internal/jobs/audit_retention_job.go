package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AuditLogTrimmer removes audit entries beyond the retention limit and
// reports how many rows were dropped.
type AuditLogTrimmer interface {
	TrimToRetention(ctx context.Context) (int64, error)
}

// AuditRetentionJob enforces the audit log retention limit on a schedule.
// Appends already trim inline, so this job only catches entries left behind
// by out-of-band writes.
type AuditRetentionJob struct {
	trimmer AuditLogTrimmer
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewAuditRetentionJob creates a new job that trims the audit log hourly.
func NewAuditRetentionJob(trimmer AuditLogTrimmer, logger *zap.Logger) *AuditRetentionJob {
	return &AuditRetentionJob{
		trimmer: trimmer,
		cron:    cron.New(),
		logger:  logger.Named("audit_retention_job"),
	}
}

// Start begins the audit retention job on an hourly schedule.
func (j *AuditRetentionJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		dropped, trimErr := j.trimmer.TrimToRetention(ctx)
		if trimErr != nil {
			j.logger.Error("audit retention trim failed", zap.Error(trimErr))
			return
		}

		if dropped > 0 {
			j.logger.Info("audit retention trim dropped entries", zap.Int64("dropped", dropped))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("audit retention job started (running hourly)")
	return nil
}

// Stop stops the audit retention job.
func (j *AuditRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.Info("audit retention job stopped")
}
