package repository

import (
	"errors"
	"fmt"
	"time"

	"go-training-booking/internal/domain/entity"
	domainRepo "go-training-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Trainer.User").Preload("Company.User").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindActiveByTrainerAndDate(db *gorm.DB, trainerID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := db.
		Where("trainer_id = ?", trainerID).
		Where("booking_date = ?", date.Format("2006-01-02")).
		Where("status IN ?", entity.NonTerminalStatuses())
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Order("start_time ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update writes only the columns a reschedule may touch, guarded on the
// status the caller read. Approval and payment fields are never in the SET
// list, so a concurrent approval cannot be reverted from a stale struct.
func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", booking.ID, booking.Status).
		Updates(map[string]interface{}{
			"booking_date":    booking.BookingDate,
			"start_time":      booking.StartTime,
			"duration_hours":  booking.DurationHours,
			"training_types":  booking.TrainingTypes,
			"requester_notes": booking.RequesterNotes,
		})
	return result.RowsAffected, result.Error
}

// TransitionStatus flips status only when the booking is still in `from`.
// Returns affected rows: 1 = success, 0 = concurrent writer got there first.
func (r *bookingRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// ApplyApproval writes the approval and payment fields together in one
// conditional UPDATE. Either every field lands or none does.
func (r *bookingRepository) ApplyApproval(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, approvedAt time.Time, payment *entity.PaymentConfirmation, adminNotes string) (int64, error) {
	updates := map[string]interface{}{
		"status":               entity.BookingStatusApproved,
		"is_approved_by_admin": true,
		"approved_by_admin_id": adminID,
		"approved_at":          approvedAt,
		"payment_status":       entity.PaymentStatusConfirmed,
		"payment_confirmation": payment,
	}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}

	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, entity.BookingStatusPendingApproval).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) ApplyRejection(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, rejectedAt time.Time, adminNotes string) (int64, error) {
	updates := map[string]interface{}{
		"status":               entity.BookingStatusRejected,
		"approved_by_admin_id": adminID,
		"approved_at":          rejectedAt,
	}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}

	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, entity.BookingStatusPendingApproval).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) List(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	filter.Normalize()

	query := db.Model(&entity.Booking{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TrainerID != uuid.Nil {
		query = query.Where("trainer_id = ?", filter.TrainerID)
	}
	if filter.CompanyID != uuid.Nil {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.DateFrom != "" {
		query = query.Where("booking_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("booking_date <= ?", filter.DateTo)
	}
	if filter.ApprovedOnly {
		query = query.Where("is_approved_by_admin = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []entity.Booking
	err := query.
		Preload("Trainer.User").Preload("Company.User").
		Order(fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder)).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}
