package repository

import (
	"errors"

	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Create(record).Error
}

func (r *healthRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthRecord, error) {
	var record entity.HealthRecord
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.Where("user_id = ?", userID).Order("record_date DESC, created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) Update(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Omit("User", "Member").Save(record).Error
}

func (r *healthRecordRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.HealthRecord{})
	return affected.RowsAffected, affected.Error
}
