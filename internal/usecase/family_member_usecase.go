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

var ErrMemberNotFound = errors.New("family member not found")

type FamilyMemberUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.FamilyMemberResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type familyMemberUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	memberRepo repository.FamilyMemberRepository
	userRepo   repository.UserRepository
	audit      service.AuditService
	feedCache  *service.FeedCacheService
}

func NewFamilyMemberUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	memberRepo repository.FamilyMemberRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
	feedCache *service.FeedCacheService,
) FamilyMemberUsecase {
	return &familyMemberUsecase{
		db:         db,
		log:        log,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		audit:      audit,
		feedCache:  feedCache,
	}
}

func (u *familyMemberUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	member := &entity.FamilyMember{
		UserID:     userID,
		Name:       req.Name,
		Relation:   req.Relation,
		Age:        req.Age,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
	}

	if err := u.memberRepo.Create(tx, member); err != nil {
		u.log.Warnf("Failed to create family member: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, tx, &userID, entity.AuditActionMemberCreate, "family_member", member.ID.String(), member.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.FamilyMemberToResponse(member), nil
}

func (u *familyMemberUsecase) GetAll(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error) {
	members, err := u.memberRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list family members: %+v", err)
		return nil, err
	}

	return converter.FamilyMembersToListResponse(members), nil
}

// ListForUser returns another user's family members. It backs the admin view
// and does not enforce ownership, so routing must gate it behind the admin role.
func (u *familyMemberUsecase) ListForUser(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	members, err := u.memberRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list family members: %+v", err)
		return nil, err
	}

	return converter.FamilyMembersToListResponse(members), nil
}

func (u *familyMemberUsecase) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.FamilyMemberResponse, error) {
	member, err := u.findOwned(u.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return converter.FamilyMemberToResponse(member), nil
}

func (u *familyMemberUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	member, err := u.findOwned(tx, userID, id)
	if err != nil {
		return nil, err
	}

	before := *member

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Relation != "" {
		member.Relation = req.Relation
	}
	if req.Age != "" {
		member.Age = req.Age
	}
	if req.Avatar != "" {
		member.Avatar = req.Avatar
	}
	if req.BloodGroup != "" {
		member.BloodGroup = req.BloodGroup
	}

	if err := u.memberRepo.Update(tx, member); err != nil {
		u.log.Warnf("Failed to update family member: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &userID, entity.AuditActionMemberUpdate, "family_member", member.ID.String(), before.Name, member.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.FamilyMemberToResponse(member), nil
}

func (u *familyMemberUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	member, err := u.findOwned(tx, userID, id)
	if err != nil {
		return err
	}

	if _, err := u.memberRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete family member: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &userID, entity.AuditActionMemberDelete, "family_member", id.String(), member.Name)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.feedCache.Invalidate(ctx, userID)

	return nil
}

// findOwned loads a member and enforces ownership. Records belonging to
// another household are reported as not found, never as forbidden.
func (u *familyMemberUsecase) findOwned(db *gorm.DB, userID uuid.UUID, id uuid.UUID) (*entity.FamilyMember, error) {
	member, err := u.memberRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find family member: %+v", err)
		return nil, err
	}
	if member == nil || member.UserID != userID {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
