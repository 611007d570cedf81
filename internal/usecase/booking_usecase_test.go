package usecase

import (
	"context"
	"testing"
	"time"

	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/service"
	"go-training-booking/pkg/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// fakeBookingRepo satisfies repository.BookingRepository without a database,
// recording what the usecases hand it.
type fakeBookingRepo struct {
	byID   *entity.Booking
	active []entity.Booking

	updateRows int64
	updated    *entity.Booking

	transitionRows     int64
	transitionFrom     entity.BookingStatus
	transitionTo       entity.BookingStatus
	approvalRows       int64
	approvalPayment    *entity.PaymentConfirmation
	approvalAdminNotes string
	rejectionRows      int64
	deleteRows         int64

	listFilter *entity.BookingFilter
	listResult []entity.Booking
	listTotal  int64
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	booking.ID = uuid.New()
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	if f.byID == nil || f.byID.ID != id {
		return nil, nil
	}
	copied := *f.byID
	return &copied, nil
}

func (f *fakeBookingRepo) FindActiveByTrainerAndDate(db *gorm.DB, trainerID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]entity.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) Update(db *gorm.DB, booking *entity.Booking) (int64, error) {
	copied := *booking
	f.updated = &copied
	return f.updateRows, nil
}

func (f *fakeBookingRepo) TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	f.transitionFrom = from
	f.transitionTo = to
	return f.transitionRows, nil
}

func (f *fakeBookingRepo) ApplyApproval(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, approvedAt time.Time, payment *entity.PaymentConfirmation, adminNotes string) (int64, error) {
	f.approvalPayment = payment
	f.approvalAdminNotes = adminNotes
	return f.approvalRows, nil
}

func (f *fakeBookingRepo) ApplyRejection(db *gorm.DB, id uuid.UUID, adminID uuid.UUID, rejectedAt time.Time, adminNotes string) (int64, error) {
	return f.rejectionRows, nil
}

func (f *fakeBookingRepo) List(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	filter.Normalize()
	f.listFilter = filter
	return f.listResult, f.listTotal, nil
}

func (f *fakeBookingRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return f.deleteRows, nil
}

type fakeTrainerRepo struct {
	profile *entity.TrainerProfile
}

func (f *fakeTrainerRepo) Create(db *gorm.DB, profile *entity.TrainerProfile) error {
	return nil
}

func (f *fakeTrainerRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.TrainerProfile, error) {
	return f.profile, nil
}

func (f *fakeTrainerRepo) FindAllActive(db *gorm.DB) ([]entity.TrainerProfile, error) {
	return nil, nil
}

func (f *fakeTrainerRepo) Update(db *gorm.DB, profile *entity.TrainerProfile) error {
	return nil
}

type fakeCompanyRepo struct {
	profile *entity.CompanyProfile
}

func (f *fakeCompanyRepo) Create(db *gorm.DB, profile *entity.CompanyProfile) error {
	return nil
}

func (f *fakeCompanyRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CompanyProfile, error) {
	return f.profile, nil
}

func (f *fakeCompanyRepo) Update(db *gorm.DB, profile *entity.CompanyProfile) error {
	return nil
}

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) Record(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	f.actions = append(f.actions, action)
	return nil
}

func pendingBooking(companyID, trainerID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		ID:            uuid.New(),
		CompanyID:     companyID,
		TrainerID:     trainerID,
		BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		DurationHours: 2,
		TrainingTypes: entity.StringList{"yoga"},
		Status:        entity.BookingStatusPendingApproval,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func newTestBookingUsecase(t *testing.T, db *gorm.DB, repo *fakeBookingRepo, audit *fakeAuditService) BookingUsecase {
	t.Helper()
	log := logrus.New()
	guard := service.NewScheduleGuard(log)
	t.Cleanup(guard.Stop)

	clk := clock.NewFixed(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	return NewBookingUsecase(
		db, log, clk, repo,
		&fakeTrainerRepo{}, &fakeCompanyRepo{},
		service.NewSlotAllocator(log, repo),
		service.NewCatalogValidator(),
		guard, audit,
	)
}

func updateStartReq(startTime string) *dto.UpdateBookingRequest {
	return &dto.UpdateBookingRequest{StartTime: startTime}
}

func TestUpdateBookingLosesRaceToAdminDecision(t *testing.T) {
	db, mock := newMockDB(t)
	companyID := uuid.New()
	repo := &fakeBookingRepo{byID: pendingBooking(companyID, uuid.New()), updateRows: 0}
	uc := newTestBookingUsecase(t, db, repo, &fakeAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	resp, err := uc.UpdateBooking(context.Background(), repo.byID.ID, entity.CompanyActor{ID: companyID}, updateStartReq("10:00"))
	require.ErrorIs(t, err, ErrBookingStateChanged)
	assert.Nil(t, resp)

	// The write was guarded on the status the booking was read in, so the
	// concurrent approval's fields were never touched.
	require.NotNil(t, repo.updated)
	assert.Equal(t, entity.BookingStatusPendingApproval, repo.updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingReschedules(t *testing.T) {
	db, mock := newMockDB(t)
	companyID := uuid.New()
	repo := &fakeBookingRepo{byID: pendingBooking(companyID, uuid.New()), updateRows: 1}
	audit := &fakeAuditService{}
	uc := newTestBookingUsecase(t, db, repo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.UpdateBooking(context.Background(), repo.byID.ID, entity.CompanyActor{ID: companyID}, updateStartReq("10:00"))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:00", repo.updated.StartTime)
	assert.Contains(t, audit.actions, entity.AuditActionBookingUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingRejectsNonOwner(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeBookingRepo{byID: pendingBooking(uuid.New(), uuid.New()), updateRows: 1}
	uc := newTestBookingUsecase(t, db, repo, &fakeAuditService{})

	_, err := uc.UpdateBooking(context.Background(), repo.byID.ID, entity.CompanyActor{ID: uuid.New()}, updateStartReq("10:00"))
	require.ErrorIs(t, err, ErrBookingNotOwned)
	assert.Nil(t, repo.updated)
}

func TestUpdateBookingRejectsTerminalStatus(t *testing.T) {
	db, _ := newMockDB(t)
	companyID := uuid.New()
	booking := pendingBooking(companyID, uuid.New())
	booking.Status = entity.BookingStatusCompleted
	repo := &fakeBookingRepo{byID: booking}
	uc := newTestBookingUsecase(t, db, repo, &fakeAuditService{})

	_, err := uc.UpdateBooking(context.Background(), booking.ID, entity.CompanyActor{ID: companyID}, updateStartReq("10:00"))
	require.ErrorIs(t, err, ErrBookingNotEditable)
}

func TestCancelBookingLosesRaceToConcurrentTransition(t *testing.T) {
	db, mock := newMockDB(t)
	companyID := uuid.New()
	repo := &fakeBookingRepo{byID: pendingBooking(companyID, uuid.New()), transitionRows: 0}
	uc := newTestBookingUsecase(t, db, repo, &fakeAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.CancelBooking(context.Background(), repo.byID.ID, entity.CompanyActor{ID: companyID})
	require.ErrorIs(t, err, ErrBookingStateChanged)
	assert.Equal(t, entity.BookingStatusPendingApproval, repo.transitionFrom)
	assert.Equal(t, entity.BookingStatusCancelled, repo.transitionTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
