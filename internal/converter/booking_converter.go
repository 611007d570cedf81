package converter

import (
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                booking.ID,
		CompanyID:         booking.CompanyID,
		TrainerID:         booking.TrainerID,
		BookingDate:       booking.BookingDate.Format("2006-01-02"),
		StartTime:         booking.StartTime,
		DurationHours:     booking.DurationHours,
		TrainingTypes:     booking.TrainingTypes,
		Status:            string(booking.Status),
		PaymentStatus:     string(booking.PaymentStatus),
		IsApprovedByAdmin: booking.IsApprovedByAdmin,
		ApprovedByAdminID: booking.ApprovedByAdminID,
		ApprovedAt:        booking.ApprovedAt,
		AdminNotes:        booking.AdminNotes,
		RequesterNotes:    booking.RequesterNotes,
		TrainerNotes:      booking.TrainerNotes,
		CreatedAt:         booking.CreatedAt,
		UpdatedAt:         booking.UpdatedAt,
	}

	// End-of-day clock time wraps modulo 24h for display only
	if start, err := booking.StartMinutes(); err == nil {
		response.EndTime = entity.FormatClockMinutes(start + booking.DurationMinutes())
	}

	if booking.PaymentConfirmation != nil {
		response.PaymentConfirmation = &dto.PaymentConfirmationResponse{
			Mode:          booking.PaymentConfirmation.Mode,
			TransactionID: booking.PaymentConfirmation.TransactionID,
			Type:          booking.PaymentConfirmation.Type,
			Amount:        booking.PaymentConfirmation.Amount,
		}
	}

	// Include trainer and company info if preloaded
	if booking.Trainer.UserID != uuid.Nil {
		response.Trainer = TrainerProfileToResponse(&booking.Trainer)
	}
	if booking.Company.UserID != uuid.Nil {
		response.Company = CompanyProfileToResponse(&booking.Company)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
