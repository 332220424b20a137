package service

import (
	"context"
	"fmt"
	"reminder-notifier/internal/application/dto"
	"reminder-notifier/internal/application/notification"
	"reminder-notifier/internal/domain/delivery"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/domain/repository"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultDeliveryConcurrency = 10
	defaultSendTimeout         = 15 * time.Second
)

// DeliveryOptions tunes a delivery run.
type DeliveryOptions struct {
	Concurrency int           // Maximum reminders processed at once
	SendTimeout time.Duration // Deadline for a single channel send
}

type deliveryService struct {
	reminderRepo repository.ReminderRepository
	channel      delivery.Channel
	renderer     *notification.Renderer
	opts         DeliveryOptions
	log          logger.Logger
}

// NewDeliveryService creates a new instance of DeliveryService implementation.
func NewDeliveryService(
	reminderRepo repository.ReminderRepository,
	channel delivery.Channel,
	renderer *notification.Renderer,
	opts DeliveryOptions,
	log logger.Logger,
) DeliveryService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultDeliveryConcurrency
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = defaultSendTimeout
	}
	return &deliveryService{
		reminderRepo: reminderRepo,
		channel:      channel,
		renderer:     renderer,
		opts:         opts,
		log:          log,
	}
}

// RunOnce delivers every reminder due at now.
func (s *deliveryService) RunOnce(ctx context.Context, now time.Time) (*dto.RunSummary, error) {
	due, err := s.reminderRepo.FindDue(ctx, now)
	if err != nil {
		s.log.Error("Failed to fetch due reminders", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	summary := &dto.RunSummary{Attempted: len(due), Failed: []dto.ItemFailure{}}
	if len(due) == 0 {
		s.log.Debug("No reminders to send")
		return summary, nil
	}
	s.log.Info(fmt.Sprintf("Found %d reminders to send via %s", len(due), s.channel.Name()))

	// Each goroutine owns its slot; none returns an error, so one failure never
	// cancels or skips its siblings.
	results := make([]error, len(due))
	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for i, reminder := range due {
		i, reminder := i, reminder
		g.Go(func() error {
			results[i] = s.deliver(ctx, reminder)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range results {
		if err == nil {
			summary.Succeeded++
			continue
		}
		summary.Failed = append(summary.Failed, dto.ItemFailure{
			ID:      due[i].ID,
			OwnerID: due[i].OwnerID,
			Reason:  err.Error(),
		})
	}
	sort.Slice(summary.Failed, func(a, b int) bool {
		fa, fb := summary.Failed[a], summary.Failed[b]
		if fa.OwnerID != fb.OwnerID {
			return fa.OwnerID < fb.OwnerID
		}
		return fa.ID < fb.ID
	})

	return summary, nil
}

// deliver renders, sends and marks one reminder. A panic is converted into the item's error.
func (s *deliveryService) deliver(ctx context.Context, r *entity.Reminder) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic while delivering: %v", appErrors.ErrInternalServer, p)
			s.log.Error(fmt.Sprintf("Recovered panic while delivering reminder %s/%s", r.OwnerID, r.ID), err)
		}
	}()

	content, err := s.renderer.Render(r, notification.ResolveTag(r.Language))
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to render reminder %s/%s", r.OwnerID, r.ID), err)
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	defer cancel()
	if err := s.channel.Send(sendCtx, content); err != nil {
		// Left unsent; the next run picks it up again.
		s.log.Error(fmt.Sprintf("Failed to send reminder %s/%s to %s", r.OwnerID, r.ID, r.DeliveryAddress), err)
		return err
	}
	s.log.Info(fmt.Sprintf("Reminder %s/%s sent to %s (%s)", r.OwnerID, r.ID, r.DeliveryAddress, r.Language))

	// The notification is out; a cancelled run must not turn it into a duplicate.
	markCtx, cancelMark := context.WithTimeout(context.WithoutCancel(ctx), s.opts.SendTimeout)
	defer cancelMark()
	if err := s.reminderRepo.MarkSent(markCtx, r.ID, r.OwnerID); err != nil {
		// The notification went out but the flag did not land: the next run will send it again.
		s.log.Error(fmt.Sprintf("Reminder %s/%s was delivered but could not be marked as sent", r.OwnerID, r.ID), err)
		return fmt.Errorf("%w: delivered but not marked sent: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Reminder %s/%s marked as sent", r.OwnerID, r.ID))
	return nil
}
