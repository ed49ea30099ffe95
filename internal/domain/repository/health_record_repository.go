package repository

import (
	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(db *gorm.DB, record *entity.HealthRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthRecord, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.HealthRecord, error)
	Update(db *gorm.DB, record *entity.HealthRecord) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
