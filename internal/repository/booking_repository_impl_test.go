package repository

import (
	"testing"
	"time"

	"go-training-booking/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestBookingUpdateGuardsOnStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()

	booking := &entity.Booking{
		ID:             uuid.New(),
		Status:         entity.BookingStatusPendingApproval,
		BookingDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		DurationHours:  1.5,
		TrainingTypes:  entity.StringList{"yoga"},
		RequesterNotes: "moved",
	}

	// The UPDATE must carry the as-read status in its WHERE clause; zero
	// affected rows means a concurrent transition won and nothing changed.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE id = \$[0-9]+ AND status = \$[0-9]+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.Update(db, booking)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingTransitionStatusConditionalUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE id = \$[0-9]+ AND status = \$[0-9]+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.TransitionStatus(db, id, entity.BookingStatusApproved, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
