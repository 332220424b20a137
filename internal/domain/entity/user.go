package entity

import "time"

// User is the owner's profile. It is read when a reminder is created to fill in the
// address and language snapshot; changing it never touches existing reminders.
type User struct {
	ID         string    `gorm:"column:user_id;primaryKey;size:128"`
	Email      string    `gorm:"column:email"`
	Language   string    `gorm:"column:language;size:16;default:en"`
	LineUserID *string   `gorm:"column:line_user_id"` // Set when the user receives reminders over LINE
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// DeliveryAddress returns the address a new reminder should be sent to for the given
// channel kind. LINE users are addressed by their LINE user ID, everyone else by email.
func (u *User) DeliveryAddress(preferLine bool) string {
	if preferLine && u.LineUserID != nil && *u.LineUserID != "" {
		return *u.LineUserID
	}
	return u.Email
}
