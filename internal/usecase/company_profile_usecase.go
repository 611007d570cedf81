package usecase

import (
	"context"

	"go-training-booking/internal/converter"
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/domain/repository"
	"go-training-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompanyUsecase interface {
	GetCompany(ctx context.Context, companyID uuid.UUID) (*dto.CompanyResponse, error)
	UpdateProfile(ctx context.Context, companyID uuid.UUID, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyResponse, error)
}

type companyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	companyRepo  repository.CompanyProfileRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewCompanyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	companyRepo repository.CompanyProfileRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) CompanyUsecase {
	return &companyUsecase{
		db:           db,
		log:          log,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *companyUsecase) GetCompany(ctx context.Context, companyID uuid.UUID) (*dto.CompanyResponse, error) {
	profile, err := u.companyRepo.FindByUserID(u.db.WithContext(ctx), companyID)
	if err != nil {
		u.log.Warnf("Failed to find company profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCompanyNotFound
	}

	return converter.CompanyProfileToResponse(profile), nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, companyID uuid.UUID, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.companyRepo.FindByUserID(tx, companyID)
	if err != nil {
		u.log.Warnf("Failed to find company profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCompanyNotFound
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if err := u.companyRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update company profile: %+v", err)
		return nil, err
	}

	if req.FullName != "" {
		user, err := u.userRepo.FindByID(tx, companyID)
		if err != nil {
			u.log.Warnf("Failed to find user: %+v", err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		user.FullName = req.FullName
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
		profile.User = *user
	}

	if err := u.auditService.Record(tx, &companyID, entity.AuditActionProfileUpdate, entity.JSON{
		"company_id": companyID.String(),
	}); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CompanyProfileToResponse(profile), nil
}
