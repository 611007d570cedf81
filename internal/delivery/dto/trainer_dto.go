package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateCatalogRequest struct {
	OfferedTrainingTypes []string `json:"offered_training_types" validate:"required,min=1,dive,required"`
}

type UpdateTrainerProfileRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,min=2"`
	Biography string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TrainerProfileResponse struct {
	CertificationNumber  string   `json:"certification_number"`
	OfferedTrainingTypes []string `json:"offered_training_types"`
	Biography            string   `json:"biography,omitempty"`
}

type TrainerResponse struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	CertificationNumber  string    `json:"certification_number"`
	OfferedTrainingTypes []string  `json:"offered_training_types"`
	Biography            string    `json:"biography,omitempty"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
	Total    int               `json:"total"`
}
