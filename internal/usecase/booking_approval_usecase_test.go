package usecase

import (
	"context"
	"testing"
	"time"

	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApprovalUsecase(t *testing.T, db *gorm.DB, repo *fakeBookingRepo, audit *fakeAuditService) BookingApprovalUsecase {
	t.Helper()
	clk := clock.NewFixed(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	return NewBookingApprovalUsecase(db, logrus.New(), clk, repo, audit)
}

func approveReq() *dto.ApproveBookingRequest {
	return &dto.ApproveBookingRequest{
		PaymentConfirmation: dto.PaymentConfirmationRequest{
			Mode:          "bank_transfer",
			TransactionID: "TX-1001",
			Type:          "full",
			Amount:        decimal.NewFromInt(500),
		},
	}
}

func TestApproveWithPaymentAttachesConfirmation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &fakeBookingRepo{byID: pendingBooking(uuid.New(), uuid.New()), approvalRows: 1}
	audit := &fakeAuditService{}
	uc := newTestApprovalUsecase(t, db, repo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()

	adminID := uuid.New()
	resp, err := uc.ApproveWithPayment(context.Background(), repo.byID.ID, adminID, approveReq())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, string(entity.BookingStatusApproved), resp.Status)
	assert.True(t, resp.IsApprovedByAdmin)
	require.NotNil(t, resp.PaymentConfirmation)
	assert.Equal(t, "TX-1001", resp.PaymentConfirmation.TransactionID)
	assert.Equal(t, string(entity.PaymentStatusConfirmed), resp.PaymentStatus)

	require.NotNil(t, repo.approvalPayment)
	assert.Equal(t, "TX-1001", repo.approvalPayment.TransactionID)
	assert.Contains(t, audit.actions, entity.AuditActionBookingApprove)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveWithPaymentLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &fakeBookingRepo{byID: pendingBooking(uuid.New(), uuid.New()), approvalRows: 0}
	uc := newTestApprovalUsecase(t, db, repo, &fakeAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	resp, err := uc.ApproveWithPayment(context.Background(), repo.byID.ID, uuid.New(), approveReq())
	require.ErrorIs(t, err, ErrBookingStateChanged)
	assert.Nil(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveWithPaymentRejectsInvalidConfirmation(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeBookingRepo{byID: pendingBooking(uuid.New(), uuid.New()), approvalRows: 1}
	uc := newTestApprovalUsecase(t, db, repo, &fakeAuditService{})

	req := approveReq()
	req.PaymentConfirmation.TransactionID = ""

	_, err := uc.ApproveWithPayment(context.Background(), repo.byID.ID, uuid.New(), req)
	require.ErrorIs(t, err, ErrInvalidPayment)
	assert.Nil(t, repo.approvalPayment)
}

func TestApproveWithPaymentRejectsNonPendingBooking(t *testing.T) {
	db, _ := newMockDB(t)
	booking := pendingBooking(uuid.New(), uuid.New())
	booking.Status = entity.BookingStatusApproved
	repo := &fakeBookingRepo{byID: booking, approvalRows: 1}
	uc := newTestApprovalUsecase(t, db, repo, &fakeAuditService{})

	_, err := uc.ApproveWithPayment(context.Background(), booking.ID, uuid.New(), approveReq())
	var transitionErr *entity.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Nil(t, repo.approvalPayment)
}

func TestConfirmLosesRaceToConcurrentTransition(t *testing.T) {
	db, mock := newMockDB(t)
	trainerID := uuid.New()
	booking := pendingBooking(uuid.New(), trainerID)
	booking.Status = entity.BookingStatusApproved
	repo := &fakeBookingRepo{byID: booking, transitionRows: 0}
	uc := newTestApprovalUsecase(t, db, repo, &fakeAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.Confirm(context.Background(), booking.ID, entity.TrainerActor{ID: trainerID})
	require.ErrorIs(t, err, ErrBookingStateChanged)
	assert.Equal(t, entity.BookingStatusApproved, repo.transitionFrom)
	assert.Equal(t, entity.BookingStatusConfirmed, repo.transitionTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
