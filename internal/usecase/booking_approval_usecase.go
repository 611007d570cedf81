package usecase

import (
	"context"
	"errors"

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

// ErrInvalidPayment wraps payment confirmation validation failures.
var ErrInvalidPayment = errors.New("invalid payment confirmation")

// BookingApprovalUsecase drives the admin-gated lifecycle transitions. The
// approve path couples the status change with the payment confirmation in a
// single transaction: both land or neither does.
type BookingApprovalUsecase interface {
	ApproveWithPayment(ctx context.Context, bookingID, adminID uuid.UUID, req *dto.ApproveBookingRequest) (*dto.BookingResponse, error)
	Reject(ctx context.Context, bookingID, adminID uuid.UUID, req *dto.RejectBookingRequest) (*dto.BookingResponse, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error)
	Complete(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error)
}

type bookingApprovalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        clock.Clock
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
}

func NewBookingApprovalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
) BookingApprovalUsecase {
	return &bookingApprovalUsecase{
		db:           db,
		log:          log,
		clock:        clk,
		bookingRepo:  bookingRepo,
		auditService: auditService,
	}
}

// ApproveWithPayment moves pending_approval -> approved and attaches the
// caller-supplied payment confirmation.
//
// Flow:
// 1. Validate the payment confirmation record
// 2. Resolve booking, run the transition through the state machine
// 3. Conditional UPDATE of status + approval + payment fields in one statement
// 4. Audit entry in the same transaction
func (u *bookingApprovalUsecase) ApproveWithPayment(ctx context.Context, bookingID, adminID uuid.UUID, req *dto.ApproveBookingRequest) (*dto.BookingResponse, error) {
	payment := &entity.PaymentConfirmation{
		Mode:          req.PaymentConfirmation.Mode,
		TransactionID: req.PaymentConfirmation.TransactionID,
		Type:          req.PaymentConfirmation.Type,
		Amount:        req.PaymentConfirmation.Amount,
	}
	if err := payment.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidPayment, err)
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	actor := entity.AdminActor{ID: adminID}
	if _, err := booking.Status.Transition(entity.BookingActionApprove, actor, booking); err != nil {
		return nil, err
	}

	approvedAt := u.clock.Now()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.bookingRepo.ApplyApproval(tx, bookingID, adminID, approvedAt, payment, req.AdminNotes)
	if err != nil {
		u.log.Warnf("Failed to approve booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		// Lost a race with another transition since the read above.
		return nil, ErrBookingStateChanged
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionBookingApprove, entity.JSON{
		"booking_id":     bookingID.String(),
		"transaction_id": payment.TransactionID,
		"amount":         payment.Amount.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Status = entity.BookingStatusApproved
	booking.IsApprovedByAdmin = true
	booking.ApprovedByAdminID = &adminID
	booking.ApprovedAt = &approvedAt
	booking.PaymentStatus = entity.PaymentStatusConfirmed
	booking.PaymentConfirmation = payment
	if req.AdminNotes != "" {
		booking.AdminNotes = req.AdminNotes
	}

	u.log.Infof("Booking approved: id=%s, admin=%s, tx=%s", bookingID, adminID, payment.TransactionID)
	return converter.BookingToResponse(booking), nil
}

// Reject is the sibling of ApproveWithPayment: same precondition, records who
// decided and when, and touches no payment fields.
func (u *bookingApprovalUsecase) Reject(ctx context.Context, bookingID, adminID uuid.UUID, req *dto.RejectBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	actor := entity.AdminActor{ID: adminID}
	if _, err := booking.Status.Transition(entity.BookingActionReject, actor, booking); err != nil {
		return nil, err
	}

	rejectedAt := u.clock.Now()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.bookingRepo.ApplyRejection(tx, bookingID, adminID, rejectedAt, req.AdminNotes)
	if err != nil {
		u.log.Warnf("Failed to reject booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingStateChanged
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionBookingReject, entity.JSON{
		"booking_id": bookingID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Status = entity.BookingStatusRejected
	booking.ApprovedByAdminID = &adminID
	booking.ApprovedAt = &rejectedAt
	if req.AdminNotes != "" {
		booking.AdminNotes = req.AdminNotes
	}

	u.log.Infof("Booking rejected: id=%s, admin=%s", bookingID, adminID)
	return converter.BookingToResponse(booking), nil
}

// Confirm moves approved -> confirmed. Admin or the booked trainer.
func (u *bookingApprovalUsecase) Confirm(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error) {
	return u.transition(ctx, bookingID, actor, entity.BookingActionConfirm, entity.AuditActionBookingConfirm)
}

// Complete moves confirmed -> completed. Admin or the booked trainer.
func (u *bookingApprovalUsecase) Complete(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error) {
	return u.transition(ctx, bookingID, actor, entity.BookingActionComplete, entity.AuditActionBookingComplete)
}

func (u *bookingApprovalUsecase) transition(ctx context.Context, bookingID uuid.UUID, actor entity.Actor, action entity.BookingAction, auditAction string) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	to, err := booking.Status.Transition(action, actor, booking)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.bookingRepo.TransitionStatus(tx, bookingID, booking.Status, to)
	if err != nil {
		u.log.Warnf("Failed to %s booking %s: %+v", action, bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingStateChanged
	}

	actorID := actorUserID(actor)
	if err := u.auditService.Record(tx, actorID, auditAction, entity.JSON{
		"booking_id": bookingID.String(),
		"from":       string(booking.Status),
		"to":         string(to),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Status = to
	u.log.Infof("Booking %s: id=%s", to, bookingID)
	return converter.BookingToResponse(booking), nil
}
