package repository

import (
	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyMemberRepository interface {
	Create(db *gorm.DB, member *entity.FamilyMember) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.FamilyMember, error)
	Update(db *gorm.DB, member *entity.FamilyMember) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
