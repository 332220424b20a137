package service

import (
	"context"
	"fmt"
	"reminder-notifier/internal/application/dto"
	"reminder-notifier/internal/infrastructure/scheduler"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	deliverySvc   DeliveryService
	spec          string
	now           func() time.Time
	log           logger.Logger

	mu      sync.Mutex
	entryID cron.EntryID
	started bool
	stopped bool
	runs    sync.WaitGroup // In-flight RunNow calls, awaited by Stop
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	deliverySvc DeliveryService,
	spec string,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		deliverySvc:   deliverySvc,
		spec:          spec,
		now:           time.Now,
		log:           log,
	}
}

// Start registers the delivery job on the cron scheduler.
func (s *schedulerService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	entryID, err := s.cronScheduler.AddJob(s.spec, func() {
		s.log.Debug("Executing scheduled delivery run")
		if _, err := s.RunNow(ctx); err != nil {
			s.log.Error("Scheduled delivery run failed", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}

	s.entryID = entryID
	s.started = true
	s.log.Info(fmt.Sprintf("Scheduled delivery runs with spec %q (Job ID: %d)", s.spec, entryID))
	return nil
}

// RunNow performs one delivery run at the current time.
func (s *schedulerService) RunNow(ctx context.Context) (*dto.RunSummary, error) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: scheduler is stopped", appErrors.ErrScheduling)
	}
	s.runs.Add(1)
	s.mu.Unlock()
	defer s.runs.Done()

	started := s.now()
	summary, err := s.deliverySvc.RunOnce(ctx, started)
	if err != nil {
		return nil, err
	}

	s.log.Info(fmt.Sprintf("Delivery run finished in %s: attempted=%d succeeded=%d failed=%d",
		time.Since(started).Round(time.Millisecond), summary.Attempted, summary.Succeeded, len(summary.Failed)))
	for _, f := range summary.Failed {
		s.log.Warn(fmt.Sprintf("Reminder %s/%s not delivered: %s", f.OwnerID, f.ID, f.Reason))
	}
	return summary, nil
}

// Stop removes the delivery job, stops the underlying scheduler and waits for
// every in-flight run, including ones started through RunNow.
func (s *schedulerService) Stop() {
	s.mu.Lock()
	if s.started {
		s.cronScheduler.RemoveJob(s.entryID)
		s.started = false
	}
	s.stopped = true
	s.mu.Unlock()
	s.cronScheduler.Stop()
	s.runs.Wait()
}
