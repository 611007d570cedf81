package usecase

import (
	"context"

	"go-training-booking/internal/converter"
	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/domain/repository"
	"go-training-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingQueryUsecase is the read side of the booking lifecycle: filtered,
// paginated, role-scoped views over persisted state. Nothing here mutates.
type BookingQueryUsecase interface {
	ListForAdmin(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error)
	ListForCompany(ctx context.Context, companyID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error)
	ListForTrainer(ctx context.Context, trainerID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error)
	ListPendingApprovals(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error)
}

type bookingQueryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewBookingQueryUsecase(db *gorm.DB, log *logrus.Logger, bookingRepo repository.BookingRepository) BookingQueryUsecase {
	return &bookingQueryUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
	}
}

// ListForAdmin applies the filter as given, unrestricted.
func (u *bookingQueryUsecase) ListForAdmin(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error) {
	return u.list(ctx, filter)
}

// ListForCompany pins the company scope regardless of what the filter asks for.
func (u *bookingQueryUsecase) ListForCompany(ctx context.Context, companyID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error) {
	filter.CompanyID = companyID
	return u.list(ctx, filter)
}

// ListForTrainer pins the trainer scope and restricts to admin-approved
// bookings; the pre-approval backlog is never visible through this view.
func (u *bookingQueryUsecase) ListForTrainer(ctx context.Context, trainerID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error) {
	filter.TrainerID = trainerID
	filter.ApprovedOnly = true
	return u.list(ctx, filter)
}

// ListPendingApprovals is the admin queue view.
func (u *bookingQueryUsecase) ListPendingApprovals(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error) {
	filter.Status = entity.BookingStatusPendingApproval
	return u.list(ctx, filter)
}

func (u *bookingQueryUsecase) list(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, *response.Meta, error) {
	bookings, total, err := u.bookingRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, nil, err
	}

	result := &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    total,
	}
	return result, response.NewMeta(filter.Page, filter.Limit, total), nil
}
