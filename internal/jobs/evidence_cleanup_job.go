package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultEvidenceTTL is how long an unlinked evidence photo survives
// before the cleanup job removes it.
const DefaultEvidenceTTL = 24 * time.Hour

// EvidenceCleanupJob periodically deletes evidence photos that were
// uploaded but never attached to anything. Runs hourly; an upload that
// is abandoned mid-flow disappears within the TTL plus one tick.
type EvidenceCleanupJob struct {
	handler commands.CleanupEvidenceCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEvidenceCleanupJob creates a cleanup job with the given retention
// window. A non-positive ttl falls back to DefaultEvidenceTTL.
func NewEvidenceCleanupJob(
	handler commands.CleanupEvidenceCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *EvidenceCleanupJob {
	if ttl <= 0 {
		ttl = DefaultEvidenceTTL
	}

	return &EvidenceCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "evidence_cleanup_job"),
	}
}

// Start begins the cleanup job on an hourly schedule.
func (j *EvidenceCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupEvidenceCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Evidence cleanup command invalid", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Evidence cleanup job failed", "error", handleErr)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Evidence cleanup removed stale files", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Evidence cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *EvidenceCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Evidence cleanup job stopped")
}
