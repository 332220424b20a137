package service

import (
	"context"
	"reminder-notifier/internal/application/dto"
)

// UserService defines the interface for owner profile logic.
type UserService interface {
	// SaveUser creates or replaces an owner profile. Existing reminders keep their snapshots.
	SaveUser(ctx context.Context, req dto.SaveUserRequest) (*dto.UserResponse, error)
	// GetUser finds a profile by ID. Returns ErrUserNotFound if absent.
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	// DeleteUser deletes a profile.
	DeleteUser(ctx context.Context, userID string) error
}
