package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderPriority represents the urgency tier of a reminder
type ReminderPriority string

const (
	PriorityHigh   ReminderPriority = "high"
	PriorityMedium ReminderPriority = "medium"
	PriorityLow    ReminderPriority = "low"
)

// Reminder is a user-authored reminder. Auto-generated reminders (document
// expiry, vehicle papers, health renewals, birthdays) are derived views and
// never persisted; only manual entries live in this table.
type Reminder struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Person    string           `gorm:"type:varchar(255)" json:"person,omitempty"`
	DueDate   string           `gorm:"type:varchar(20);not null" json:"due_date"`
	Priority  ReminderPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Reminder) TableName() string {
	return "reminders"
}
