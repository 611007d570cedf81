package converter

import (
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
)

// TrainerProfileToResponse converts a TrainerProfile entity to TrainerResponse DTO.
// User must be preloaded for email/name/active fields.
func TrainerProfileToResponse(profile *entity.TrainerProfile) *dto.TrainerResponse {
	if profile == nil {
		return nil
	}

	return &dto.TrainerResponse{
		ID:                   profile.UserID,
		Email:                profile.User.Email,
		FullName:             profile.User.FullName,
		CertificationNumber:  profile.CertificationNumber,
		OfferedTrainingTypes: profile.OfferedTrainingTypes,
		Biography:            profile.Biography,
		IsActive:             profile.User.IsActive,
		CreatedAt:            profile.User.CreatedAt,
	}
}

// TrainerProfilesToResponses converts a slice of TrainerProfile entities
func TrainerProfilesToResponses(profiles []entity.TrainerProfile) []dto.TrainerResponse {
	responses := make([]dto.TrainerResponse, len(profiles))
	for i, profile := range profiles {
		resp := TrainerProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
