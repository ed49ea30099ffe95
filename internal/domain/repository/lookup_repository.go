package repository

import (
	"family-records-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DocumentTypeRepository interface {
	Create(db *gorm.DB, dt *entity.DocumentType) error
	FindAll(db *gorm.DB) ([]entity.DocumentType, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

type BloodGroupRepository interface {
	Create(db *gorm.DB, bg *entity.BloodGroup) error
	FindAll(db *gorm.DB) ([]entity.BloodGroup, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
