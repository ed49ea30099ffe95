package repository

import (
	"errors"

	"family-records-api/internal/domain/entity"
	domainRepo "family-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepository struct{}

func NewVehicleRepository() domainRepo.VehicleRepository {
	return &vehicleRepository{}
}

func (r *vehicleRepository) Create(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Create(vehicle).Error
}

func (r *vehicleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := db.Preload("Documents").Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := db.Preload("Documents").Where("user_id = ?", userID).Order("created_at ASC").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Omit("User", "Documents").Save(vehicle).Error
}

// ReplaceDocuments swaps the vehicle's paper set atomically within the
// caller's transaction.
func (r *vehicleRepository) ReplaceDocuments(db *gorm.DB, vehicleID uuid.UUID, docs []entity.VehicleDocument) error {
	if err := db.Where("vehicle_id = ?", vehicleID).Delete(&entity.VehicleDocument{}).Error; err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	for i := range docs {
		docs[i].ID = 0
		docs[i].VehicleID = vehicleID
	}
	return db.Create(&docs).Error
}

func (r *vehicleRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if err := db.Where("vehicle_id = ?", id).Delete(&entity.VehicleDocument{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("id = ?", id).Delete(&entity.Vehicle{})
	return affected.RowsAffected, affected.Error
}
