package repository

import (
	"errors"

	"go-training-booking/internal/domain/entity"
	domainRepo "go-training-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type companyProfileRepository struct{}

func NewCompanyProfileRepository() domainRepo.CompanyProfileRepository {
	return &companyProfileRepository{}
}

func (r *companyProfileRepository) Create(db *gorm.DB, profile *entity.CompanyProfile) error {
	return db.Create(profile).Error
}

func (r *companyProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *companyProfileRepository) Update(db *gorm.DB, profile *entity.CompanyProfile) error {
	return db.Omit("User").Save(profile).Error
}
