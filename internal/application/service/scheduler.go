package service

import (
	"context"
	"reminder-notifier/internal/application/dto"
)

// SchedulerService triggers delivery runs on a fixed schedule.
type SchedulerService interface {
	// Start registers the periodic delivery job. Runs use ctx as their parent context.
	Start(ctx context.Context) error
	// RunNow performs one delivery run immediately and logs its summary.
	RunNow(ctx context.Context) (*dto.RunSummary, error)
	// Stop stops the underlying scheduler, waiting for a running job to finish.
	Stop()
}
