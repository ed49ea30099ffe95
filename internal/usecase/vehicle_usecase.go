package usecase

import (
	"context"
	"errors"
	"time"

	"family-records-api/internal/converter"
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/domain/repository"
	"family-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID) (*dto.VehicleListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.VehicleResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type vehicleUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	vehicleRepo repository.VehicleRepository
	audit       service.AuditService
	feedCache   *service.FeedCacheService
}

func NewVehicleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vehicleRepo repository.VehicleRepository,
	audit service.AuditService,
	feedCache *service.FeedCacheService,
) VehicleUsecase {
	return &vehicleUsecase{
		db:          db,
		log:         log,
		vehicleRepo: vehicleRepo,
		audit:       audit,
		feedCache:   feedCache,
	}
}

func (u *vehicleUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle := &entity.Vehicle{
		UserID: userID,
		Type:   entity.VehicleType(req.Type),
		Name:   req.Name,
		Model:  req.Model,
		Number: req.Number,
	}

	if err := u.vehicleRepo.Create(tx, vehicle); err != nil {
		u.log.Warnf("Failed to create vehicle: %+v", err)
		return nil, err
	}

	if len(req.Documents) > 0 {
		docs := buildVehicleDocuments(vehicle.ID, req.Documents)
		if err := u.vehicleRepo.ReplaceDocuments(tx, vehicle.ID, docs); err != nil {
			u.log.Warnf("Failed to attach vehicle documents: %+v", err)
			return nil, err
		}
		vehicle.Documents = docs
	}

	u.audit.LogCreate(ctx, tx, &userID, entity.AuditActionVehicleCreate, "vehicle", vehicle.ID.String(), vehicle.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.VehicleToResponse(time.Now(), vehicle), nil
}

func (u *vehicleUsecase) GetAll(ctx context.Context, userID uuid.UUID) (*dto.VehicleListResponse, error) {
	vehicles, err := u.vehicleRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list vehicles: %+v", err)
		return nil, err
	}

	return converter.VehiclesToListResponse(time.Now(), vehicles), nil
}

func (u *vehicleUsecase) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.VehicleResponse, error) {
	vehicle, err := u.findOwned(u.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return converter.VehicleToResponse(time.Now(), vehicle), nil
}

func (u *vehicleUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.findOwned(tx, userID, id)
	if err != nil {
		return nil, err
	}

	before := *vehicle

	if req.Type != "" {
		vehicle.Type = entity.VehicleType(req.Type)
	}
	if req.Name != "" {
		vehicle.Name = req.Name
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.Number != "" {
		vehicle.Number = req.Number
	}

	if err := u.vehicleRepo.Update(tx, vehicle); err != nil {
		u.log.Warnf("Failed to update vehicle: %+v", err)
		return nil, err
	}

	// Papers are replaced as a set; partial edits come in as the full list.
	if req.Documents != nil {
		docs := buildVehicleDocuments(vehicle.ID, req.Documents)
		if err := u.vehicleRepo.ReplaceDocuments(tx, vehicle.ID, docs); err != nil {
			u.log.Warnf("Failed to replace vehicle documents: %+v", err)
			return nil, err
		}
		vehicle.Documents = docs
	}

	u.audit.LogUpdate(ctx, tx, &userID, entity.AuditActionVehicleUpdate, "vehicle", vehicle.ID.String(), before.Name, vehicle.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.VehicleToResponse(time.Now(), vehicle), nil
}

func (u *vehicleUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.findOwned(tx, userID, id)
	if err != nil {
		return err
	}

	if _, err := u.vehicleRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete vehicle: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &userID, entity.AuditActionVehicleDelete, "vehicle", id.String(), vehicle.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.feedCache.Invalidate(ctx, userID)

	return nil
}

func (u *vehicleUsecase) findOwned(db *gorm.DB, userID uuid.UUID, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := u.vehicleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle: %+v", err)
		return nil, err
	}
	if vehicle == nil || vehicle.UserID != userID {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func buildVehicleDocuments(vehicleID uuid.UUID, reqs []dto.VehicleDocumentRequest) []entity.VehicleDocument {
	docs := make([]entity.VehicleDocument, len(reqs))
	for i, r := range reqs {
		docs[i] = entity.VehicleDocument{
			VehicleID:      vehicleID,
			Name:           r.Name,
			ExpiryDate:     r.ExpiryDate,
			ValidUntilDate: r.ValidUntilDate,
			FileRef:        r.FileRef,
			Amount:         r.Amount,
		}
	}
	return docs
}
