package dto

import (
	"reminder-notifier/internal/domain/entity"
	"time"
)

// ReminderResponse is the DTO for sending reminder information to the client (e.g., listing reminders).
type ReminderResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Message         string    `json:"message"`
	DueAt           time.Time `json:"due_at"`
	DeliveryAddress string    `json:"delivery_address"`
	Language        string    `json:"language"`
	Sent            bool      `json:"sent"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Message:         r.Message,
		DueAt:           r.DueAt,
		DeliveryAddress: r.DeliveryAddress,
		Language:        r.Language,
		Sent:            r.Sent,
		CreatedAt:       r.CreatedAt,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// CreateReminderRequest is the DTO for creating a new reminder.
// DeliveryAddress and Language are optional; when empty they are copied from the owner's profile.
type CreateReminderRequest struct {
	OwnerID         string    `json:"-"`
	Message         string    `json:"message"`
	DueAt           time.Time `json:"due_at"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	Language        string    `json:"language,omitempty"`
}
