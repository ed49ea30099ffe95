package repository

import (
	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, doc *entity.Document) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Document, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Document, error)
	Update(db *gorm.DB, doc *entity.Document) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
