package repository

import (
	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderRepository stores manual reminders only; auto-generated reminders
// are a derived view and never hit the database.
type ReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.Reminder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Reminder, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Reminder, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
