package usecase

import (
	"context"
	"errors"

	"family-records-api/internal/converter"
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDocumentTypeExists   = errors.New("document type already exists")
	ErrDocumentTypeNotFound = errors.New("document type not found")
	ErrBloodGroupExists     = errors.New("blood group already exists")
	ErrBloodGroupNotFound   = errors.New("blood group not found")
)

// LookupUsecase manages the admin-maintained reference lists. Lists are read
// by every account but written only through the admin routes.
type LookupUsecase interface {
	CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error)
	GetDocumentTypes(ctx context.Context) (*dto.DocumentTypeListResponse, error)
	DeleteDocumentType(ctx context.Context, id int) error
	CreateBloodGroup(ctx context.Context, req *dto.CreateBloodGroupRequest) (*dto.BloodGroupResponse, error)
	GetBloodGroups(ctx context.Context) (*dto.BloodGroupListResponse, error)
	DeleteBloodGroup(ctx context.Context, id int) error
}

type lookupUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	docTypeRepo  repository.DocumentTypeRepository
	bloodGrpRepo repository.BloodGroupRepository
}

func NewLookupUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	docTypeRepo repository.DocumentTypeRepository,
	bloodGrpRepo repository.BloodGroupRepository,
) LookupUsecase {
	return &lookupUsecase{
		db:           db,
		log:          log,
		docTypeRepo:  docTypeRepo,
		bloodGrpRepo: bloodGrpRepo,
	}
}

func (u *lookupUsecase) CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	dt := &entity.DocumentType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.docTypeRepo.Create(u.db.WithContext(ctx), dt); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDocumentTypeExists
		}
		u.log.Warnf("Failed to create document type: %+v", err)
		return nil, err
	}

	return converter.DocumentTypeToResponse(dt), nil
}

func (u *lookupUsecase) GetDocumentTypes(ctx context.Context) (*dto.DocumentTypeListResponse, error) {
	types, err := u.docTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list document types: %+v", err)
		return nil, err
	}

	return converter.DocumentTypesToListResponse(types), nil
}

func (u *lookupUsecase) DeleteDocumentType(ctx context.Context, id int) error {
	affected, err := u.docTypeRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete document type: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDocumentTypeNotFound
	}
	return nil
}

func (u *lookupUsecase) CreateBloodGroup(ctx context.Context, req *dto.CreateBloodGroupRequest) (*dto.BloodGroupResponse, error) {
	bg := &entity.BloodGroup{Name: req.Name}

	if err := u.bloodGrpRepo.Create(u.db.WithContext(ctx), bg); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrBloodGroupExists
		}
		u.log.Warnf("Failed to create blood group: %+v", err)
		return nil, err
	}

	return converter.BloodGroupToResponse(bg), nil
}

func (u *lookupUsecase) GetBloodGroups(ctx context.Context) (*dto.BloodGroupListResponse, error) {
	groups, err := u.bloodGrpRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list blood groups: %+v", err)
		return nil, err
	}

	return converter.BloodGroupsToListResponse(groups), nil
}

func (u *lookupUsecase) DeleteBloodGroup(ctx context.Context, id int) error {
	affected, err := u.bloodGrpRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete blood group: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrBloodGroupNotFound
	}
	return nil
}
