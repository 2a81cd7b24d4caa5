package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"taskboard-api/internal/client"
	"taskboard-api/internal/repository"
)

// CleanupResult summarizes one cleanup run
type CleanupResult struct {
	Scanned int
	Removed int
	Failed  int
}

// CleanupJob removes stored files that no attachment references any more.
// Card and list cascades delete attachment rows but leave their files behind.
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	storage        client.FileStorage
	minAge         time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

// NewCleanupJob creates a new CleanupJob instance. Files younger than minAge are kept
// so an upload whose row is still being written is never removed.
func NewCleanupJob(
	attachmentRepo repository.AttachmentRepository,
	storage client.FileStorage,
	minAge time.Duration,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		minAge:         minAge,
		logger:         logger,
		now:            time.Now,
	}
}

// Run executes the cleanup job. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if _, err := j.RunContext(ctx); err != nil {
		j.logger.Error("Cleanup job failed", zap.Error(err))
	}
}

// RunContext scans the storage once and deletes unreferenced files older than the grace period
func (j *CleanupJob) RunContext(ctx context.Context) (*CleanupResult, error) {
	j.logger.Info("Starting cleanup job for orphaned uploads")

	files, err := j.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored files: %w", err)
	}

	result := &CleanupResult{Scanned: len(files)}
	cutoff := j.now().Add(-j.minAge)

	for _, file := range files {
		if file.ModTime.After(cutoff) {
			continue
		}

		referenced, err := j.attachmentRepo.ExistsByURL(ctx, file.URL)
		if err != nil {
			j.logger.Error("Failed to check attachment reference",
				zap.String("url", file.URL),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		if referenced {
			continue
		}

		if err := j.storage.Delete(ctx, file.URL); err != nil {
			j.logger.Error("Failed to delete orphaned file",
				zap.String("url", file.URL),
				zap.Error(err),
			)
			result.Failed++
			continue
		}

		result.Removed++
		j.logger.Debug("Deleted orphaned file", zap.String("url", file.URL))
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("scanned", result.Scanned),
		zap.Int("removed", result.Removed),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// Schedule registers the job on a new cron scheduler and starts it.
// The caller stops the returned scheduler on shutdown.
func (j *CleanupJob) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddJob(spec, j); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", spec, err)
	}
	c.Start()

	j.logger.Info("Cleanup job scheduled", zap.String("schedule", spec), zap.Duration("min_age", j.minAge))
	return c, nil
}
