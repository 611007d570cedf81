package usecase

import (
	"context"
	"errors"
	"time"

	"go-training-booking/internal/converter"
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/domain/repository"
	"go-training-booking/internal/service"
	"go-training-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTrainerNotFound     = errors.New("trainer not found")
	ErrTrainerInactive     = errors.New("trainer account is inactive")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyInactive     = errors.New("company account is inactive")
	ErrPastBookingDate     = errors.New("booking date must be today or later")
	ErrInvalidBookingDate  = errors.New("invalid booking date format, use YYYY-MM-DD")
	ErrInvalidStartTime    = errors.New("invalid start time format, use HH:MM")
	ErrInvalidDuration     = errors.New("duration must be between 0.5 and 24 hours")
	ErrBookingNotOwned     = errors.New("booking does not belong to you")
	ErrBookingNotEditable  = errors.New("booking in a terminal status cannot be rescheduled")
	ErrAdminOnly           = errors.New("only an admin may perform this action")
	ErrBookingStateChanged = errors.New("booking was modified concurrently, please retry")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, companyID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) error
	GetBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	clock            clock.Clock
	bookingRepo      repository.BookingRepository
	trainerRepo      repository.TrainerProfileRepository
	companyRepo      repository.CompanyProfileRepository
	allocator        *service.SlotAllocator
	catalogValidator *service.CatalogValidator
	guard            *service.ScheduleGuard
	auditService     service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	bookingRepo repository.BookingRepository,
	trainerRepo repository.TrainerProfileRepository,
	companyRepo repository.CompanyProfileRepository,
	allocator *service.SlotAllocator,
	catalogValidator *service.CatalogValidator,
	guard *service.ScheduleGuard,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		clock:            clk,
		bookingRepo:      bookingRepo,
		trainerRepo:      trainerRepo,
		companyRepo:      companyRepo,
		allocator:        allocator,
		catalogValidator: catalogValidator,
		guard:            guard,
		auditService:     auditService,
	}
}

// CreateBooking validates the request against the trainer's catalogue and
// schedule, then persists a booking in pending_approval.
//
// Flow:
// 1. Resolve company and trainer, both must be active
// 2. Catalogue containment check on requested training types
// 3. Parse and validate date, start time, duration
// 4. Acquire the schedule guard for trainer+date
// 5. Availability check and insert inside one transaction
func (u *bookingUsecase) CreateBooking(ctx context.Context, companyID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	company, err := u.companyRepo.FindByUserID(u.db.WithContext(ctx), companyID)
	if err != nil {
		u.log.Warnf("Failed to find company %s: %+v", companyID, err)
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	if !company.User.IsActive {
		return nil, ErrCompanyInactive
	}

	trainer, err := u.trainerRepo.FindByUserID(u.db.WithContext(ctx), req.TrainerID)
	if err != nil {
		u.log.Warnf("Failed to find trainer %s: %+v", req.TrainerID, err)
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}
	if !trainer.User.IsActive {
		return nil, ErrTrainerInactive
	}

	if err := u.catalogValidator.Validate(req.TrainingTypes, trainer); err != nil {
		return nil, err
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidBookingDate
	}
	if _, err := entity.ParseClockMinutes(req.StartTime); err != nil {
		return nil, ErrInvalidStartTime
	}
	if req.DurationHours < entity.MinDurationHours || req.DurationHours > entity.MaxDurationHours {
		return nil, ErrInvalidDuration
	}

	today := u.clock.Now().UTC().Truncate(24 * time.Hour)
	if bookingDate.Before(today) {
		return nil, ErrPastBookingDate
	}

	// Serialize against every other create/update touching this trainer's day.
	unlock := u.guard.Lock(req.TrainerID, bookingDate)
	defer unlock()

	booking := &entity.Booking{
		CompanyID:      companyID,
		TrainerID:      req.TrainerID,
		BookingDate:    bookingDate,
		StartTime:      req.StartTime,
		DurationHours:  req.DurationHours,
		TrainingTypes:  entity.StringList(req.TrainingTypes),
		Status:         entity.BookingStatusPendingApproval,
		PaymentStatus:  entity.PaymentStatusPending,
		RequesterNotes: req.RequesterNotes,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.allocator.CheckAvailable(tx, req.TrainerID, bookingDate, req.StartTime, req.DurationHours, nil); err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &companyID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id": booking.ID.String(),
		"trainer_id": req.TrainerID.String(),
		"date":       req.BookingDate,
		"start_time": req.StartTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, trainer=%s, date=%s %s", booking.ID, req.TrainerID, req.BookingDate, req.StartTime)
	return converter.BookingToResponse(booking), nil
}

// UpdateBooking reschedules a booking the requesting company owns. Slot and
// catalogue rules are re-checked with the booking itself excluded from the
// conflict scan.
func (u *bookingUsecase) UpdateBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.Owns(booking) {
		return nil, ErrBookingNotOwned
	}
	if booking.Status.IsTerminal() {
		return nil, ErrBookingNotEditable
	}

	slotChanged := false

	if req.BookingDate != "" {
		bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
		if err != nil {
			return nil, ErrInvalidBookingDate
		}
		today := u.clock.Now().UTC().Truncate(24 * time.Hour)
		if bookingDate.Before(today) {
			return nil, ErrPastBookingDate
		}
		booking.BookingDate = bookingDate
		slotChanged = true
	}
	if req.StartTime != "" {
		if _, err := entity.ParseClockMinutes(req.StartTime); err != nil {
			return nil, ErrInvalidStartTime
		}
		booking.StartTime = req.StartTime
		slotChanged = true
	}
	if req.DurationHours != nil {
		if *req.DurationHours < entity.MinDurationHours || *req.DurationHours > entity.MaxDurationHours {
			return nil, ErrInvalidDuration
		}
		booking.DurationHours = *req.DurationHours
		slotChanged = true
	}
	if req.TrainingTypes != nil {
		trainer, err := u.trainerRepo.FindByUserID(u.db.WithContext(ctx), booking.TrainerID)
		if err != nil {
			u.log.Warnf("Failed to find trainer %s: %+v", booking.TrainerID, err)
			return nil, err
		}
		if trainer == nil {
			return nil, ErrTrainerNotFound
		}
		if err := u.catalogValidator.Validate(req.TrainingTypes, trainer); err != nil {
			return nil, err
		}
		booking.TrainingTypes = entity.StringList(req.TrainingTypes)
	}
	if req.RequesterNotes != nil {
		booking.RequesterNotes = *req.RequesterNotes
	}

	if slotChanged {
		unlock := u.guard.Lock(booking.TrainerID, booking.BookingDate)
		defer unlock()
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if slotChanged {
		excludeID := booking.ID
		if err := u.allocator.CheckAvailable(tx, booking.TrainerID, booking.BookingDate, booking.StartTime, booking.DurationHours, &excludeID); err != nil {
			return nil, err
		}
	}

	rows, err := u.bookingRepo.Update(tx, booking)
	if err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		// The booking left the status we read it in, typically because an
		// admin decision landed first. Nothing was written.
		return nil, ErrBookingStateChanged
	}

	actorID := actorUserID(actor)
	if err := u.auditService.Record(tx, actorID, entity.AuditActionBookingUpdate, entity.JSON{
		"booking_id": booking.ID.String(),
		"date":       booking.BookingDate.Format("2006-01-02"),
		"start_time": booking.StartTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking updated: id=%s", bookingID)
	return converter.BookingToResponse(booking), nil
}

// CancelBooking moves the booking to cancelled through the transition table;
// the conditional status flip guards against concurrent writers.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	to, err := booking.Status.Transition(entity.BookingActionCancel, actor, booking)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.bookingRepo.TransitionStatus(tx, bookingID, booking.Status, to)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingStateChanged
	}

	actorID := actorUserID(actor)
	if err := u.auditService.Record(tx, actorID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_id": booking.ID.String(),
		"from":       string(booking.Status),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Status = to
	u.log.Infof("Booking cancelled: id=%s", bookingID)
	return converter.BookingToResponse(booking), nil
}

// DeleteBooking removes a booking outright. Admin only, no status restriction.
func (u *bookingUsecase) DeleteBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) error {
	if actor.RoleName() != entity.RoleAdmin {
		return ErrAdminOnly
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.bookingRepo.Delete(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to delete booking %s: %+v", bookingID, err)
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}

	actorID := actorUserID(actor)
	if err := u.auditService.Record(tx, actorID, entity.AuditActionBookingDelete, entity.JSON{
		"booking_id": bookingID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Booking deleted: id=%s", bookingID)
	return nil
}

// GetBooking returns a single booking the actor is allowed to see: admins see
// everything, owners see their own, and trainers additionally only once the
// booking has been admin-approved.
func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if actor.RoleName() != entity.RoleAdmin {
		if !actor.Owns(booking) {
			return nil, ErrBookingNotOwned
		}
		if actor.RoleName() == entity.RoleTrainer && !booking.IsApprovedByAdmin {
			return nil, ErrBookingNotFound
		}
	}

	return converter.BookingToResponse(booking), nil
}

// actorUserID extracts the concrete user id behind an actor for audit entries.
func actorUserID(actor entity.Actor) *uuid.UUID {
	switch a := actor.(type) {
	case entity.AdminActor:
		return &a.ID
	case entity.TrainerActor:
		return &a.ID
	case entity.CompanyActor:
		return &a.ID
	}
	return nil
}
