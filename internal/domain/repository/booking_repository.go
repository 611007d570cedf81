package repository

import (
	"time"

	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)

	// FindActiveByTrainerAndDate returns every booking that still occupies a
	// slot (non-terminal status) for the trainer on the given date.
	// excludeID, when non-nil, drops the booking being updated from the result.
	FindActiveByTrainerAndDate(db *gorm.DB, trainerID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]entity.Booking, error)

	// Update persists only the reschedulable columns (date, start time,
	// duration, training types, requester notes), guarded on the status the
	// caller read so a concurrent transition is never overwritten.
	// Returns affected rows: 1 = success, 0 = booking changed underneath.
	Update(db *gorm.DB, booking *entity.Booking) (int64, error)

	// TransitionStatus flips status from -> to in a single conditional UPDATE.
	// Returns affected rows: 1 = success, 0 = booking was not in `from`.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error)

	// ApplyApproval atomically sets status=approved together with the
	// write-once approval and payment fields, guarded on status=pending_approval.
	ApplyApproval(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, approvedAt time.Time, payment *entity.PaymentConfirmation, adminNotes string) (int64, error)

	// ApplyRejection is the sibling of ApplyApproval: status=rejected plus the
	// approver identity, with no payment fields touched.
	ApplyRejection(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, rejectedAt time.Time, adminNotes string) (int64, error)

	List(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
