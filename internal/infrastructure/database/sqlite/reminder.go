package sqlite

import (
	"context"
	"errors"
	"fmt"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/domain/repository"
	appErrors "reminder-notifier/internal/pkg/errors"
	"time"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindDue retrieves all unsent reminders whose due time has passed, across all owners.
func (r *reminderRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("sent = ? AND due_at <= ?", false, now.UTC()).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find due reminders at %v: %w", now, err)
	}
	return reminders, nil
}

// MarkSent flags one reminder as sent. The update is unconditional on the current value,
// so repeating it on an already-sent reminder still matches the row and succeeds.
func (r *reminderRepository) MarkSent(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("sent", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark reminder %s/%s as sent: %w", ownerID, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder %s/%s: %w", ownerID, id, appErrors.ErrReminderNotFound)
	}
	return nil
}

// FindByID retrieves a reminder by owner and ID.
func (r *reminderRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder %s/%s: %w", ownerID, id, appErrors.ErrReminderNotFound)
		}
		return nil, fmt.Errorf("failed to find reminder %s/%s: %w", ownerID, id, err)
	}
	return &reminder, nil
}

// FindUpcomingByOwner retrieves unsent reminders due after now for one owner.
func (r *reminderRepository) FindUpcomingByOwner(ctx context.Context, ownerID string, now time.Time) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND sent = ? AND due_at > ?", ownerID, false, now.UTC()).
		Order("due_at asc").
		Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find upcoming reminders for owner %s: %w", ownerID, err)
	}
	return reminders, nil
}

// Create creates a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminder.DueAt = reminder.DueAt.UTC()
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder for owner %s: %w", reminder.OwnerID, err)
	}
	return nil
}

// Delete deletes one reminder of an owner.
func (r *reminderRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).Delete(&entity.Reminder{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete reminder %s/%s: %w", ownerID, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder %s/%s: %w", ownerID, id, appErrors.ErrReminderNotFound)
	}
	return nil
}
