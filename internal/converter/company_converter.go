package converter

import (
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
)

// CompanyProfileToResponse converts a CompanyProfile entity to CompanyResponse DTO.
// User must be preloaded for email/name/active fields.
func CompanyProfileToResponse(profile *entity.CompanyProfile) *dto.CompanyResponse {
	if profile == nil {
		return nil
	}

	return &dto.CompanyResponse{
		ID:                 profile.UserID,
		Email:              profile.User.Email,
		FullName:           profile.User.FullName,
		RegistrationNumber: profile.RegistrationNumber,
		PhoneNumber:        profile.PhoneNumber,
		IsActive:           profile.User.IsActive,
		CreatedAt:          profile.User.CreatedAt,
	}
}
