package usecase

import (
	"context"
	"errors"

	"family-records-api/internal/converter"
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/domain/repository"
	"family-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHealthRecordNotFound = errors.New("health record not found")

type HealthRecordUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID) (*dto.HealthRecordListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.HealthRecordResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type healthRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	healthRepo repository.HealthRecordRepository
	audit      service.AuditService
	feedCache  *service.FeedCacheService
}

func NewHealthRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthRepo repository.HealthRecordRepository,
	audit service.AuditService,
	feedCache *service.FeedCacheService,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:         db,
		log:        log,
		healthRepo: healthRepo,
		audit:      audit,
		feedCache:  feedCache,
	}
}

func (u *healthRecordUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record := &entity.HealthRecord{
		UserID:     userID,
		MemberID:   req.MemberID,
		PersonName: req.PersonName,
		Type:       entity.HealthRecordType(req.Type),
		Title:      req.Title,
		RecordDate: req.RecordDate,
		Status:     entity.HealthRecordStatus(req.Status),
		Notes:      req.Notes,
	}

	if err := u.healthRepo.Create(tx, record); err != nil {
		if isForeignKeyError(err, "member") {
			return nil, ErrMemberNotFound
		}
		u.log.Warnf("Failed to create health record: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, tx, &userID, entity.AuditActionHealthCreate, "health_record", record.ID.String(), record.Title)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) GetAll(ctx context.Context, userID uuid.UUID) (*dto.HealthRecordListResponse, error) {
	records, err := u.healthRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list health records: %+v", err)
		return nil, err
	}

	return converter.HealthRecordsToListResponse(records), nil
}

func (u *healthRecordUsecase) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.HealthRecordResponse, error) {
	record, err := u.findOwned(u.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findOwned(tx, userID, id)
	if err != nil {
		return nil, err
	}

	before := *record

	if req.MemberID != nil {
		record.MemberID = req.MemberID
	}
	if req.PersonName != "" {
		record.PersonName = req.PersonName
	}
	if req.Type != "" {
		record.Type = entity.HealthRecordType(req.Type)
	}
	if req.Title != "" {
		record.Title = req.Title
	}
	if req.RecordDate != "" {
		record.RecordDate = req.RecordDate
	}
	if req.Status != "" {
		record.Status = entity.HealthRecordStatus(req.Status)
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := u.healthRepo.Update(tx, record); err != nil {
		if isForeignKeyError(err, "member") {
			return nil, ErrMemberNotFound
		}
		u.log.Warnf("Failed to update health record: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &userID, entity.AuditActionHealthUpdate, "health_record", record.ID.String(), string(before.Status), string(record.Status))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findOwned(tx, userID, id)
	if err != nil {
		return err
	}

	if _, err := u.healthRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete health record: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &userID, entity.AuditActionHealthDelete, "health_record", id.String(), record.Title)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.feedCache.Invalidate(ctx, userID)

	return nil
}

func (u *healthRecordUsecase) findOwned(db *gorm.DB, userID uuid.UUID, id uuid.UUID) (*entity.HealthRecord, error) {
	record, err := u.healthRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find health record: %+v", err)
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, ErrHealthRecordNotFound
	}
	return record, nil
}
