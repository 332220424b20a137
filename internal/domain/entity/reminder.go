package entity

import "time"

// Reminder is a one-shot reminder owned by a single user.
// DeliveryAddress and Language are snapshots taken at creation time; Sent is the
// only field the delivery engine writes.
type Reminder struct {
	ID              string    `gorm:"primaryKey;column:id;size:36"`
	OwnerID         string    `gorm:"primaryKey;column:owner_id;size:128"`
	DeliveryAddress string    `gorm:"column:delivery_address;not null"`
	Language        string    `gorm:"column:language;size:16;not null;default:en"`
	Message         string    `gorm:"column:message;type:text"`
	DueAt           time.Time `gorm:"column:due_at;not null;index:idx_reminders_due,priority:2"`
	Sent            bool      `gorm:"column:sent;not null;default:false;index:idx_reminders_due,priority:1"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// IsDue reports whether the reminder is eligible for delivery at now.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Sent && !r.DueAt.After(now)
}
