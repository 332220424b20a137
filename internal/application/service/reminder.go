package service

import (
	"context"
	"reminder-notifier/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
type ReminderService interface {
	// CreateReminder creates a new one-shot reminder, snapshotting the delivery address
	// and language from the request or from the owner's profile.
	CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	// GetReminder retrieves one reminder of an owner.
	GetReminder(ctx context.Context, ownerID, reminderID string) (*dto.ReminderResponse, error)
	// ListUpcomingReminders retrieves unsent reminders due in the future, earliest first.
	ListUpcomingReminders(ctx context.Context, ownerID string) ([]dto.ReminderResponse, error)
	// DeleteReminder deletes one reminder of an owner.
	DeleteReminder(ctx context.Context, ownerID, reminderID string) error
}
