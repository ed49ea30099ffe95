package repository

import (
	"errors"

	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, doc *entity.Document) error {
	return db.Create(doc).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := db.Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Document, error) {
	var docs []entity.Document
	err := db.Where("user_id = ?", userID).Order("uploaded_date DESC, created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Update(db *gorm.DB, doc *entity.Document) error {
	return db.Omit("User", "Member").Save(doc).Error
}

func (r *documentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Document{})
	return affected.RowsAffected, affected.Error
}
