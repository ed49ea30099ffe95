package repository

import (
	"errors"

	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Create(reminder).Error
}

func (r *reminderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Where("user_id = ?", userID).Order("due_date ASC, created_at ASC").Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Reminder{})
	return affected.RowsAffected, affected.Error
}
