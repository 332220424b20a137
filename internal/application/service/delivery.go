package service

import (
	"context"
	"reminder-notifier/internal/application/dto"
	"time"
)

// DeliveryService delivers due reminders.
type DeliveryService interface {
	// RunOnce fetches every due, unsent reminder, delivers each one independently and
	// marks the delivered ones as sent. Per-item failures are reported in the summary;
	// an error is returned only when the due set could not be fetched.
	RunOnce(ctx context.Context, now time.Time) (*dto.RunSummary, error)
}
