package repository

import (
	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.TrainerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.TrainerProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.TrainerProfile, error)
	Update(db *gorm.DB, profile *entity.TrainerProfile) error
}
