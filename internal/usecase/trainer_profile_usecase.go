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

type TrainerUsecase interface {
	ListTrainers(ctx context.Context) (*dto.TrainerListResponse, error)
	GetTrainer(ctx context.Context, trainerID uuid.UUID) (*dto.TrainerResponse, error)
	UpdateCatalog(ctx context.Context, trainerID uuid.UUID, actor entity.Actor, req *dto.UpdateCatalogRequest) (*dto.TrainerResponse, error)
	UpdateProfile(ctx context.Context, trainerID uuid.UUID, req *dto.UpdateTrainerProfileRequest) (*dto.TrainerResponse, error)
	Deactivate(ctx context.Context, trainerID uuid.UUID) error
}

type trainerUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	trainerRepo      repository.TrainerProfileRepository
	userRepo         repository.UserRepository
	catalogValidator *service.CatalogValidator
	auditService     service.AuditService
}

func NewTrainerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	trainerRepo repository.TrainerProfileRepository,
	userRepo repository.UserRepository,
	catalogValidator *service.CatalogValidator,
	auditService service.AuditService,
) TrainerUsecase {
	return &trainerUsecase{
		db:               db,
		log:              log,
		trainerRepo:      trainerRepo,
		userRepo:         userRepo,
		catalogValidator: catalogValidator,
		auditService:     auditService,
	}
}

func (u *trainerUsecase) ListTrainers(ctx context.Context) (*dto.TrainerListResponse, error) {
	profiles, err := u.trainerRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list trainers: %+v", err)
		return nil, err
	}

	return &dto.TrainerListResponse{
		Trainers: converter.TrainerProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *trainerUsecase) GetTrainer(ctx context.Context, trainerID uuid.UUID) (*dto.TrainerResponse, error) {
	profile, err := u.trainerRepo.FindByUserID(u.db.WithContext(ctx), trainerID)
	if err != nil {
		u.log.Warnf("Failed to find trainer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrTrainerNotFound
	}

	return converter.TrainerProfileToResponse(profile), nil
}

// UpdateCatalog replaces a trainer's offered catalogue. Admins can update any
// trainer, a trainer only their own.
func (u *trainerUsecase) UpdateCatalog(ctx context.Context, trainerID uuid.UUID, actor entity.Actor, req *dto.UpdateCatalogRequest) (*dto.TrainerResponse, error) {
	if err := u.catalogValidator.ValidateVocabulary(req.OfferedTrainingTypes); err != nil {
		return nil, err
	}

	profile, err := u.trainerRepo.FindByUserID(u.db.WithContext(ctx), trainerID)
	if err != nil {
		u.log.Warnf("Failed to find trainer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrTrainerNotFound
	}

	switch a := actor.(type) {
	case entity.AdminActor:
		// unrestricted
	case entity.TrainerActor:
		if a.ID != trainerID {
			return nil, entity.ErrActorNotAllowed
		}
	default:
		return nil, entity.ErrActorNotAllowed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile.OfferedTrainingTypes = entity.StringList(req.OfferedTrainingTypes)
	if err := u.trainerRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update trainer catalogue: %+v", err)
		return nil, err
	}

	actorID := actorUserID(actor)
	if err := u.auditService.Record(tx, actorID, entity.AuditActionCatalogUpdate, entity.JSON{
		"trainer_id":             trainerID.String(),
		"offered_training_types": req.OfferedTrainingTypes,
	}); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TrainerProfileToResponse(profile), nil
}

func (u *trainerUsecase) UpdateProfile(ctx context.Context, trainerID uuid.UUID, req *dto.UpdateTrainerProfileRequest) (*dto.TrainerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.trainerRepo.FindByUserID(tx, trainerID)
	if err != nil {
		u.log.Warnf("Failed to find trainer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrTrainerNotFound
	}

	if req.Biography != "" {
		profile.Biography = req.Biography
		if err := u.trainerRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update trainer profile: %+v", err)
			return nil, err
		}
	}

	if req.FullName != "" {
		user, err := u.userRepo.FindByID(tx, trainerID)
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

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TrainerProfileToResponse(profile), nil
}

// Deactivate marks a trainer account inactive so it stops appearing in the
// directory and stops accepting new bookings. Existing bookings are untouched.
func (u *trainerUsecase) Deactivate(ctx context.Context, trainerID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, trainerID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil || user.RoleID != entity.RoleIDTrainer {
		return ErrTrainerNotFound
	}

	user.IsActive = false
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to deactivate trainer: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, nil, entity.AuditActionUserDeactivate, entity.JSON{
		"user_id": trainerID.String(),
	}); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
