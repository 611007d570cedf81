package repository

import (
	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyProfileRepository interface {
	Create(db *gorm.DB, profile *entity.CompanyProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CompanyProfile, error)
	Update(db *gorm.DB, profile *entity.CompanyProfile) error
}
