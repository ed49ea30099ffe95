package usecase

import (
	"context"
	"time"

	"family-records-api/internal/assistant"
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/domain/repository"
	"family-records-api/internal/reminder"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummaryResponse, error)
	Ask(ctx context.Context, userID uuid.UUID, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	memberRepo      repository.FamilyMemberRepository
	docRepo         repository.DocumentRepository
	vehicleRepo     repository.VehicleRepository
	healthRepo      repository.HealthRecordRepository
	reminderUsecase ReminderUsecase
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	memberRepo repository.FamilyMemberRepository,
	docRepo repository.DocumentRepository,
	vehicleRepo repository.VehicleRepository,
	healthRepo repository.HealthRecordRepository,
	reminderUsecase ReminderUsecase,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		memberRepo:      memberRepo,
		docRepo:         docRepo,
		vehicleRepo:     vehicleRepo,
		healthRepo:      healthRepo,
		reminderUsecase: reminderUsecase,
	}
}

func (u *dashboardUsecase) GetSummary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()

	members, err := u.memberRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list family members: %+v", err)
		return nil, err
	}

	docs, err := u.docRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}

	vehicles, err := u.vehicleRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list vehicles: %+v", err)
		return nil, err
	}

	health, err := u.healthRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list health records: %+v", err)
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		Members:       len(members),
		Documents:     len(docs),
		Vehicles:      len(vehicles),
		HealthRecords: len(health),
	}

	for _, doc := range docs {
		switch reminder.Classify(now, doc.ExpiryDate) {
		case reminder.StatusExpiringSoon:
			summary.ExpiringDocuments++
		case reminder.StatusExpired:
			summary.ExpiredDocuments++
		}
	}

	for i := range vehicles {
		if reminder.VehicleNeedsAttention(now, &vehicles[i]) {
			summary.VehiclesAttention++
		}
	}

	feed, err := u.reminderUsecase.GetFeed(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.Reminders = countByPriority(feed.Reminders)

	return summary, nil
}

func (u *dashboardUsecase) Ask(ctx context.Context, userID uuid.UUID, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	summary, err := u.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed, err := u.reminderUsecase.GetFeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	answer := assistant.Answer(req.Question, assistant.Snapshot{
		Members:           summary.Members,
		Documents:         summary.Documents,
		Vehicles:          summary.Vehicles,
		HealthRecords:     summary.HealthRecords,
		ExpiringDocuments: summary.ExpiringDocuments,
		ExpiredDocuments:  summary.ExpiredDocuments,
		Reminders:         feed.Reminders,
	})

	return &dto.AssistantResponse{Answer: answer}, nil
}

func countByPriority(items []reminder.Item) dto.ReminderCounts {
	counts := dto.ReminderCounts{Total: len(items)}
	for _, item := range items {
		switch item.Priority {
		case entity.PriorityHigh:
			counts.High++
		case entity.PriorityMedium:
			counts.Medium++
		case entity.PriorityLow:
			counts.Low++
		}
	}
	return counts
}
