package usecase

import (
	"context"
	"errors"
	"time"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/domain/repository"
	"family-records-api/internal/reminder"
	"family-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReminderNotFound = errors.New("reminder not found")

type ReminderUsecase interface {
	GetFeed(ctx context.Context, userID uuid.UUID) (*dto.ReminderFeedResponse, error)
	CreateManual(ctx context.Context, userID uuid.UUID, req *dto.CreateReminderRequest) (*reminder.Item, error)
	DeleteManual(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	engine       *reminder.Engine
	reminderRepo repository.ReminderRepository
	docRepo      repository.DocumentRepository
	vehicleRepo  repository.VehicleRepository
	healthRepo   repository.HealthRecordRepository
	memberRepo   repository.FamilyMemberRepository
	audit        service.AuditService
	feedCache    *service.FeedCacheService
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *reminder.Engine,
	reminderRepo repository.ReminderRepository,
	docRepo repository.DocumentRepository,
	vehicleRepo repository.VehicleRepository,
	healthRepo repository.HealthRecordRepository,
	memberRepo repository.FamilyMemberRepository,
	audit service.AuditService,
	feedCache *service.FeedCacheService,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		engine:       engine,
		reminderRepo: reminderRepo,
		docRepo:      docRepo,
		vehicleRepo:  vehicleRepo,
		healthRepo:   healthRepo,
		memberRepo:   memberRepo,
		audit:        audit,
		feedCache:    feedCache,
	}
}

// GetFeed returns the unified reminder feed for a household. The feed is a
// pure function of the source collections, so a cached copy is served until
// any of them changes or the cache entry ages out.
func (u *reminderUsecase) GetFeed(ctx context.Context, userID uuid.UUID) (*dto.ReminderFeedResponse, error) {
	if items, ok := u.feedCache.Get(ctx, userID); ok {
		return &dto.ReminderFeedResponse{
			Reminders: items,
			Total:     len(items),
		}, nil
	}

	db := u.db.WithContext(ctx)
	items, srcErrs := u.engine.Generate(time.Now(), reminder.Loaders{
		Documents: func() ([]entity.Document, error) { return u.docRepo.FindByUserID(db, userID) },
		Vehicles:  func() ([]entity.Vehicle, error) { return u.vehicleRepo.FindByUserID(db, userID) },
		Health:    func() ([]entity.HealthRecord, error) { return u.healthRepo.FindByUserID(db, userID) },
		Members:   func() ([]entity.FamilyMember, error) { return u.memberRepo.FindByUserID(db, userID) },
		Manual:    func() ([]entity.Reminder, error) { return u.reminderRepo.FindByUserID(db, userID) },
	})

	var skipped []string
	for _, srcErr := range srcErrs {
		u.log.Warnf("Reminder source degraded: %+v", srcErr)
		skipped = append(skipped, string(srcErr.Source))
	}

	// A degraded feed is served but never cached, so the missing source
	// comes back on the next read instead of after the TTL.
	if len(srcErrs) == 0 {
		u.feedCache.Store(ctx, userID, items)
	}

	return &dto.ReminderFeedResponse{
		Reminders:      items,
		Total:          len(items),
		SourcesSkipped: skipped,
	}, nil
}

func (u *reminderUsecase) CreateManual(ctx context.Context, userID uuid.UUID, req *dto.CreateReminderRequest) (*reminder.Item, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rec := &entity.Reminder{
		UserID:   userID,
		Title:    req.Title,
		Person:   req.Person,
		DueDate:  req.DueDate,
		Priority: entity.ReminderPriority(req.Priority),
	}

	if err := u.reminderRepo.Create(tx, rec); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, tx, &userID, entity.AuditActionReminderCreate, "reminder", rec.ID.String(), rec.Title)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	item := reminder.ManualItem(rec)
	return &item, nil
}

func (u *reminderUsecase) DeleteManual(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rec, err := u.reminderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return err
	}
	if rec == nil || rec.UserID != userID {
		return ErrReminderNotFound
	}

	if _, err := u.reminderRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete reminder: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &userID, entity.AuditActionReminderDelete, "reminder", id.String(), rec.Title)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.feedCache.Invalidate(ctx, userID)

	return nil
}
