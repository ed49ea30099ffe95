package repository

import (
	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(db *gorm.DB, vehicle *entity.Vehicle) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vehicle, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Vehicle, error)
	Update(db *gorm.DB, vehicle *entity.Vehicle) error
	ReplaceDocuments(db *gorm.DB, vehicleID uuid.UUID, docs []entity.VehicleDocument) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
