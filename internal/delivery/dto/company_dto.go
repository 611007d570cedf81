package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateCompanyProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type CompanyProfileResponse struct {
	RegistrationNumber string `json:"registration_number"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	Address            string `json:"address,omitempty"`
}

type CompanyResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}
