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

var ErrDocumentNotFound = errors.New("document not found")

type DocumentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID) (*dto.DocumentListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.DocumentResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type documentUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	docRepo   repository.DocumentRepository
	audit     service.AuditService
	feedCache *service.FeedCacheService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	docRepo repository.DocumentRepository,
	audit service.AuditService,
	feedCache *service.FeedCacheService,
) DocumentUsecase {
	return &documentUsecase{
		db:        db,
		log:       log,
		docRepo:   docRepo,
		audit:     audit,
		feedCache: feedCache,
	}
}

func (u *documentUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doc := &entity.Document{
		UserID:       userID,
		MemberID:     req.MemberID,
		PersonName:   req.PersonName,
		Type:         req.Type,
		Number:       req.Number,
		UploadedDate: req.UploadedDate,
		ExpiryDate:   req.ExpiryDate,
		FileRef:      req.FileRef,
	}

	if err := u.docRepo.Create(tx, doc); err != nil {
		if isForeignKeyError(err, "member") {
			return nil, ErrMemberNotFound
		}
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, tx, &userID, entity.AuditActionDocumentCreate, "document", doc.ID.String(), doc.Type)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.DocumentToResponse(time.Now(), doc), nil
}

func (u *documentUsecase) GetAll(ctx context.Context, userID uuid.UUID) (*dto.DocumentListResponse, error) {
	docs, err := u.docRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}

	return converter.DocumentsToListResponse(time.Now(), docs), nil
}

func (u *documentUsecase) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := u.findOwned(u.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return converter.DocumentToResponse(time.Now(), doc), nil
}

func (u *documentUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doc, err := u.findOwned(tx, userID, id)
	if err != nil {
		return nil, err
	}

	before := *doc

	if req.MemberID != nil {
		doc.MemberID = req.MemberID
	}
	if req.PersonName != "" {
		doc.PersonName = req.PersonName
	}
	if req.Type != "" {
		doc.Type = req.Type
	}
	if req.Number != "" {
		doc.Number = req.Number
	}
	if req.UploadedDate != "" {
		doc.UploadedDate = req.UploadedDate
	}
	if req.ExpiryDate != "" {
		doc.ExpiryDate = req.ExpiryDate
	}
	if req.FileRef != "" {
		doc.FileRef = req.FileRef
	}

	if err := u.docRepo.Update(tx, doc); err != nil {
		if isForeignKeyError(err, "member") {
			return nil, ErrMemberNotFound
		}
		u.log.Warnf("Failed to update document: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &userID, entity.AuditActionDocumentUpdate, "document", doc.ID.String(), before.ExpiryDate, doc.ExpiryDate)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.feedCache.Invalidate(ctx, userID)

	return converter.DocumentToResponse(time.Now(), doc), nil
}

func (u *documentUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doc, err := u.findOwned(tx, userID, id)
	if err != nil {
		return err
	}

	if _, err := u.docRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &userID, entity.AuditActionDocumentDelete, "document", id.String(), doc.Type)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.feedCache.Invalidate(ctx, userID)

	return nil
}

func (u *documentUsecase) findOwned(db *gorm.DB, userID uuid.UUID, id uuid.UUID) (*entity.Document, error) {
	doc, err := u.docRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if doc == nil || doc.UserID != userID {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}
