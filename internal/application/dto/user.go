package dto

import "reminder-notifier/internal/domain/entity"

// SaveUserRequest is the DTO for creating or updating an owner profile.
type SaveUserRequest struct {
	UserID     string  `json:"-"`
	Email      string  `json:"email"`
	Language   string  `json:"language"`
	LineUserID *string `json:"line_user_id,omitempty"`
}

// UserResponse is the DTO for returning an owner profile.
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Language   string  `json:"language"`
	LineUserID *string `json:"line_user_id,omitempty"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Language:   u.Language,
		LineUserID: u.LineUserID,
	}
}
