package repository

import (
	"context"
	"reminder-notifier/internal/domain/entity"
	"time"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindDue retrieves every reminder, across all owners, with sent == false and due_at <= now.
	// No ordering is guaranteed.
	FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error)
	// MarkSent sets sent = true on one reminder. Marking an already-sent reminder succeeds.
	MarkSent(ctx context.Context, id, ownerID string) error
	// FindByID retrieves one reminder of an owner.
	FindByID(ctx context.Context, ownerID, id string) (*entity.Reminder, error)
	// FindUpcomingByOwner retrieves unsent reminders due after now, earliest first.
	FindUpcomingByOwner(ctx context.Context, ownerID string, now time.Time) ([]*entity.Reminder, error)
	// Create stores a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// Delete removes one reminder of an owner.
	Delete(ctx context.Context, ownerID, id string) error
}
