package converter

import (
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes TrainerProfile and CompanyProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.TrainerProfile != nil {
		response.TrainerProfile = &dto.TrainerProfileResponse{
			CertificationNumber:  user.TrainerProfile.CertificationNumber,
			OfferedTrainingTypes: user.TrainerProfile.OfferedTrainingTypes,
			Biography:            user.TrainerProfile.Biography,
		}
	}

	if user.CompanyProfile != nil {
		response.CompanyProfile = &dto.CompanyProfileResponse{
			RegistrationNumber: user.CompanyProfile.RegistrationNumber,
			PhoneNumber:        user.CompanyProfile.PhoneNumber,
			Address:            user.CompanyProfile.Address,
		}
	}

	return response
}
