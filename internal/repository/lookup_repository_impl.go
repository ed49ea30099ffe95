package repository

import (
	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"gorm.io/gorm"
)

type documentTypeRepository struct{}

func NewDocumentTypeRepository() domainRepo.DocumentTypeRepository {
	return &documentTypeRepository{}
}

func (r *documentTypeRepository) Create(db *gorm.DB, dt *entity.DocumentType) error {
	return db.Create(dt).Error
}

func (r *documentTypeRepository) FindAll(db *gorm.DB) ([]entity.DocumentType, error) {
	var types []entity.DocumentType
	err := db.Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *documentTypeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.DocumentType{})
	return affected.RowsAffected, affected.Error
}

type bloodGroupRepository struct{}

func NewBloodGroupRepository() domainRepo.BloodGroupRepository {
	return &bloodGroupRepository{}
}

func (r *bloodGroupRepository) Create(db *gorm.DB, bg *entity.BloodGroup) error {
	return db.Create(bg).Error
}

func (r *bloodGroupRepository) FindAll(db *gorm.DB) ([]entity.BloodGroup, error) {
	var groups []entity.BloodGroup
	err := db.Order("id ASC").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *bloodGroupRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.BloodGroup{})
	return affected.RowsAffected, affected.Error
}
