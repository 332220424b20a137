package repository

import (
	"context"
	"reminder-notifier/internal/domain/entity"
)

// UserRepository defines the interface for owner profile operations.
type UserRepository interface {
	// FindByUserID retrieves a user profile by its ID.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	// Save creates or replaces a user profile.
	Save(ctx context.Context, user *entity.User) error
	// Delete deletes a user profile.
	Delete(ctx context.Context, userID string) error
}
