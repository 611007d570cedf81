package usecase

import (
	"context"
	"testing"

	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForTrainerPinsScope(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeBookingRepo{listTotal: 3}
	uc := NewBookingQueryUsecase(db, logrus.New(), repo)

	trainerID := uuid.New()
	// A hostile filter asking for someone else's unapproved backlog.
	filter := &entity.BookingFilter{
		TrainerID:    uuid.New(),
		ApprovedOnly: false,
		Status:       entity.BookingStatusPendingApproval,
	}

	_, meta, err := uc.ListForTrainer(context.Background(), trainerID, filter)
	require.NoError(t, err)

	require.NotNil(t, repo.listFilter)
	assert.Equal(t, trainerID, repo.listFilter.TrainerID)
	assert.True(t, repo.listFilter.ApprovedOnly)
	assert.Equal(t, int64(3), meta.Total)
}

func TestListForCompanyPinsScope(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeBookingRepo{}
	uc := NewBookingQueryUsecase(db, logrus.New(), repo)

	companyID := uuid.New()
	filter := &entity.BookingFilter{CompanyID: uuid.New()}

	_, _, err := uc.ListForCompany(context.Background(), companyID, filter)
	require.NoError(t, err)
	assert.Equal(t, companyID, repo.listFilter.CompanyID)
}

func TestListPendingApprovalsPinsStatus(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeBookingRepo{}
	uc := NewBookingQueryUsecase(db, logrus.New(), repo)

	filter := &entity.BookingFilter{Status: entity.BookingStatusCompleted}

	_, _, err := uc.ListPendingApprovals(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPendingApproval, repo.listFilter.Status)
}
