package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterCompanyRequest registers a purchasing company account
type RegisterCompanyRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	FullName           string `json:"full_name" validate:"required,min=2"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	PhoneNumber        string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address            string `json:"address" validate:"omitempty"`
}

// RegisterTrainerRequest registers a trainer account with an offered catalogue
type RegisterTrainerRequest struct {
	Email                string   `json:"email" validate:"required,email"`
	Password             string   `json:"password" validate:"required,min=6"`
	FullName             string   `json:"full_name" validate:"required,min=2"`
	CertificationNumber  string   `json:"certification_number" validate:"required"`
	OfferedTrainingTypes []string `json:"offered_training_types" validate:"required,min=1,dive,required"`
	Biography            string   `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	IsActive       bool                    `json:"is_active"`
	TrainerProfile *TrainerProfileResponse `json:"trainer_profile,omitempty"`
	CompanyProfile *CompanyProfileResponse `json:"company_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
