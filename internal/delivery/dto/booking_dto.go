package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	TrainerID      uuid.UUID `json:"trainer_id" validate:"required"`
	BookingDate    string    `json:"booking_date" validate:"required"` // Format: YYYY-MM-DD
	StartTime      string    `json:"start_time" validate:"required"`   // Format: HH:MM
	DurationHours  float64   `json:"duration_hours" validate:"required,gte=0.5,lte=24"`
	TrainingTypes  []string  `json:"training_types" validate:"required,min=1,dive,required"`
	RequesterNotes string    `json:"requester_notes" validate:"omitempty,max=1000"`
}

type UpdateBookingRequest struct {
	BookingDate    string   `json:"booking_date" validate:"omitempty"`
	StartTime      string   `json:"start_time" validate:"omitempty"`
	DurationHours  *float64 `json:"duration_hours" validate:"omitempty,gte=0.5,lte=24"`
	TrainingTypes  []string `json:"training_types" validate:"omitempty,min=1,dive,required"`
	RequesterNotes *string  `json:"requester_notes" validate:"omitempty,max=1000"`
}

type PaymentConfirmationRequest struct {
	Mode          string          `json:"mode" validate:"required"`
	TransactionID string          `json:"transaction_id" validate:"required"`
	Type          string          `json:"type" validate:"required,oneof=full advance installment"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
}

type ApproveBookingRequest struct {
	PaymentConfirmation PaymentConfirmationRequest `json:"payment_confirmation" validate:"required"`
	AdminNotes          string                     `json:"admin_notes" validate:"omitempty,max=1000"`
}

type RejectBookingRequest struct {
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type PaymentConfirmationResponse struct {
	Mode          string          `json:"mode"`
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
}

type BookingResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	CompanyID           uuid.UUID                    `json:"company_id"`
	TrainerID           uuid.UUID                    `json:"trainer_id"`
	BookingDate         string                       `json:"booking_date"`
	StartTime           string                       `json:"start_time"`
	EndTime             string                       `json:"end_time"`
	DurationHours       float64                      `json:"duration_hours"`
	TrainingTypes       []string                     `json:"training_types"`
	Status              string                       `json:"status"`
	PaymentStatus       string                       `json:"payment_status"`
	IsApprovedByAdmin   bool                         `json:"is_approved_by_admin"`
	ApprovedByAdminID   *uuid.UUID                   `json:"approved_by_admin_id,omitempty"`
	ApprovedAt          *time.Time                   `json:"approved_at,omitempty"`
	PaymentConfirmation *PaymentConfirmationResponse `json:"payment_confirmation,omitempty"`
	AdminNotes          string                       `json:"admin_notes,omitempty"`
	RequesterNotes      string                       `json:"requester_notes,omitempty"`
	TrainerNotes        string                       `json:"trainer_notes,omitempty"`
	Trainer             *TrainerResponse             `json:"trainer,omitempty"`
	Company             *CompanyResponse             `json:"company,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
}
