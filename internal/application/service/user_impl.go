package service

import (
	"context"
	"errors"
	"fmt"
	"reminder-notifier/internal/application/dto"
	"reminder-notifier/internal/domain/constant"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/domain/repository"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"
	"strings"
)

type userService struct {
	userRepo repository.UserRepository
	log      logger.Logger
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(userRepo repository.UserRepository, log logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// SaveUser creates or replaces an owner profile.
func (s *userService) SaveUser(ctx context.Context, req dto.SaveUserRequest) (*dto.UserResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", appErrors.ErrInvalidRequest)
	}
	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email %q", appErrors.ErrInvalidRequest, email)
	}

	user := &entity.User{
		ID:         req.UserID,
		Email:      email,
		Language:   constant.ParseLocale(req.Language).String(),
		LineUserID: req.LineUserID,
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Saved profile for user %s (language %s)", user.ID, user.Language))
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetUser finds a profile by ID.
func (s *userService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteUser deletes a profile. Reminders already created for the user are left in place.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete user %s", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted profile for user %s", userID))
	return nil
}
