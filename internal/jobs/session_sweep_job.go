package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionSweeper evicts expired sessions and reports how many were removed.
type SessionSweeper interface {
	Sweep() int
}

// SessionSweepJob periodically evicts expired farmer sessions so the session
// store does not accumulate tokens that nobody will resolve again.
type SessionSweepJob struct {
	sweeper SessionSweeper
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewSessionSweepJob creates a new job that sweeps sessions every minute.
func NewSessionSweepJob(sweeper SessionSweeper, logger *zap.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sweeper: sweeper,
		cron:    cron.New(),
		logger:  logger.Named("session_sweep_job"),
	}
}

// Start begins the session sweep job on a one-minute schedule.
func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		if swept := j.sweeper.Sweep(); swept > 0 {
			j.logger.Info("expired sessions evicted", zap.Int("count", swept))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("session sweep job started (running every minute)")
	return nil
}

// Stop stops the session sweep job.
func (j *SessionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info("session sweep job stopped")
}
