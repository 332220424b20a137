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
	"time"

	"github.com/google/uuid"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	preferLine   bool // Address new reminders to the owner's LINE user ID when known
	now          func() time.Time
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	preferLine bool,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		preferLine:   preferLine,
		now:          time.Now,
		log:          log,
	}
}

// CreateReminder creates a new reminder.
func (s *reminderService) CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	message := strings.TrimSpace(req.Message)
	if req.OwnerID == "" || message == "" {
		return nil, fmt.Errorf("%w: owner and message are required", appErrors.ErrInvalidRequest)
	}
	if req.DueAt.IsZero() || req.DueAt.Before(s.now()) {
		return nil, appErrors.ErrInvalidDateTime
	}

	address := strings.TrimSpace(req.DeliveryAddress)
	language := strings.TrimSpace(req.Language)
	if address == "" || language == "" {
		user, err := s.userRepo.FindByUserID(ctx, req.OwnerID)
		switch {
		case err == nil:
			if address == "" {
				address = user.DeliveryAddress(s.preferLine)
			}
			if language == "" {
				language = user.Language
			}
		case errors.Is(err, appErrors.ErrUserNotFound):
			// No profile: an explicit address is then mandatory.
		default:
			s.log.Error(fmt.Sprintf("Failed to load profile of %s while creating reminder", req.OwnerID), err)
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}
	if address == "" {
		return nil, fmt.Errorf("%w: no delivery address for owner %s", appErrors.ErrInvalidRequest, req.OwnerID)
	}

	reminder := &entity.Reminder{
		ID:              uuid.NewString(),
		OwnerID:         req.OwnerID,
		DeliveryAddress: address,
		Language:        constant.ParseLocale(language).String(),
		Message:         message,
		DueAt:           req.DueAt,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for owner %s", req.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Created reminder %s for owner %s due at %v", reminder.ID, reminder.OwnerID, reminder.DueAt))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// GetReminder retrieves a reminder by owner and ID.
func (s *reminderService) GetReminder(ctx context.Context, ownerID, reminderID string) (*dto.ReminderResponse, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, ownerID, reminderID)
	if err != nil {
		if errors.Is(err, appErrors.ErrReminderNotFound) {
			return nil, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get reminder %s/%s", ownerID, reminderID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// ListUpcomingReminders retrieves upcoming reminders for an owner.
func (s *reminderService) ListUpcomingReminders(ctx context.Context, ownerID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindUpcomingByOwner(ctx, ownerID, s.now())
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list upcoming reminders for owner %s", ownerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// DeleteReminder deletes one reminder of an owner.
func (s *reminderService) DeleteReminder(ctx context.Context, ownerID, reminderID string) error {
	if err := s.reminderRepo.Delete(ctx, ownerID, reminderID); err != nil {
		if errors.Is(err, appErrors.ErrReminderNotFound) {
			return appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s/%s", ownerID, reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s/%s", ownerID, reminderID))
	return nil
}
