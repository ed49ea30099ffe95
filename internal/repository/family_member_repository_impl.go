package repository

import (
	"errors"

	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type familyMemberRepository struct{}

func NewFamilyMemberRepository() domainRepo.FamilyMemberRepository {
	return &familyMemberRepository{}
}

func (r *familyMemberRepository) Create(db *gorm.DB, member *entity.FamilyMember) error {
	return db.Create(member).Error
}

func (r *familyMemberRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
	var member entity.FamilyMember
	err := db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *familyMemberRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.FamilyMember, error) {
	var members []entity.FamilyMember
	err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *familyMemberRepository) Update(db *gorm.DB, member *entity.FamilyMember) error {
	return db.Omit("User").Save(member).Error
}

func (r *familyMemberRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.FamilyMember{})
	return affected.RowsAffected, affected.Error
}
