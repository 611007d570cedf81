package service

import (
	"fmt"
	"time"

	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SlotConflictError names the booking that already holds the requested
// interval on the trainer's day.
type SlotConflictError struct {
	ConflictingBookingID uuid.UUID
	Start                string
	End                  string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slot overlaps existing booking %s (%s-%s)", e.ConflictingBookingID, e.Start, e.End)
}

// SlotAllocator decides whether a requested time slot is free for a trainer
// on a date. It reads existing non-terminal bookings and never writes; the
// caller must hold the schedule guard for the trainer+date while acting on
// the answer.
type SlotAllocator struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewSlotAllocator(log *logrus.Logger, bookingRepo repository.BookingRepository) *SlotAllocator {
	return &SlotAllocator{
		log:         log,
		bookingRepo: bookingRepo,
	}
}

// CheckAvailable returns nil when [startTime, startTime+duration) is free for
// the trainer on date, or a *SlotConflictError naming the blocking booking.
// excludeID lets an update ignore the booking being moved.
func (a *SlotAllocator) CheckAvailable(db *gorm.DB, trainerID uuid.UUID, date time.Time, startTime string, durationHours float64, excludeID *uuid.UUID) error {
	reqStart, err := entity.ParseClockMinutes(startTime)
	if err != nil {
		return fmt.Errorf("parse start time %q: %w", startTime, err)
	}
	reqEnd := reqStart + int(durationHours*60)

	existing, err := a.bookingRepo.FindActiveByTrainerAndDate(db, trainerID, date, excludeID)
	if err != nil {
		a.log.Warnf("Failed to load bookings for trainer %s on %s: %+v", trainerID, date.Format("2006-01-02"), err)
		return err
	}

	conflict, err := FindConflict(existing, reqStart, reqEnd)
	if err != nil {
		return err
	}
	if conflict != nil {
		exStart, _ := conflict.StartMinutes()
		return &SlotConflictError{
			ConflictingBookingID: conflict.ID,
			Start:                entity.FormatClockMinutes(exStart),
			End:                  entity.FormatClockMinutes(exStart + conflict.DurationMinutes()),
		}
	}
	return nil
}

// FindConflict returns the first booking whose interval overlaps
// [reqStart, reqEnd), or nil if the slot is free.
//
// Intervals are half-open in minutes since midnight. A session that crosses
// midnight keeps its unwrapped end (e.g. 23:00 + 3h ends at minute 1560), so
// it is compared correctly against same-day sessions. Touching endpoints are
// not conflicts.
func FindConflict(existing []entity.Booking, reqStart, reqEnd int) (*entity.Booking, error) {
	for i := range existing {
		exStart, err := existing[i].StartMinutes()
		if err != nil {
			return nil, fmt.Errorf("booking %s has malformed start time %q: %w", existing[i].ID, existing[i].StartTime, err)
		}
		exEnd := exStart + existing[i].DurationMinutes()
		if Overlaps(reqStart, reqEnd, exStart, exEnd) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// Overlaps is the canonical half-open interval test: [a0,a1) and [b0,b1)
// overlap iff a0 < b1 and b0 < a1.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
