package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/delivery/http/middleware"
	"go-training-booking/internal/domain/entity"
	"go-training-booking/internal/service"
	"go-training-booking/internal/usecase"
	"go-training-booking/pkg/response"
	"go-training-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase  usecase.BookingUsecase
	approvalUsecase usecase.BookingApprovalUsecase
	queryUsecase    usecase.BookingQueryUsecase
	validator       *validator.CustomValidator
}

func NewBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	approvalUsecase usecase.BookingApprovalUsecase,
	queryUsecase usecase.BookingQueryUsecase,
	validator *validator.CustomValidator,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:  bookingUsecase,
		approvalUsecase: approvalUsecase,
		queryUsecase:    queryUsecase,
		validator:       validator,
	}
}

// actorFromContext rebuilds the acting identity from JWT claims.
func actorFromContext(r *http.Request) (entity.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	actor, err := entity.ActorForRole(roleID, userID)
	if err != nil {
		return nil, false
	}
	return actor, true
}

// filterFromQuery parses the list query parameters shared by all booking views.
func filterFromQuery(r *http.Request) *entity.BookingFilter {
	q := r.URL.Query()
	filter := &entity.BookingFilter{
		Status:    entity.BookingStatus(q.Get("status")),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if trainerID, err := uuid.Parse(q.Get("trainer_id")); err == nil {
		filter.TrainerID = trainerID
	}
	if companyID, err := uuid.Parse(q.Get("company_id")); err == nil {
		filter.CompanyID = companyID
	}
	return filter
}

// writeBookingError maps booking lifecycle errors to HTTP responses.
func writeBookingError(w http.ResponseWriter, err error) {
	var slotConflict *service.SlotConflictError
	var transition *entity.TransitionError
	var unknownType *service.UnknownTrainingTypeError
	var notOffered *service.TypeNotOfferedError

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrTrainerNotFound):
		response.NotFound(w, "Trainer not found")
	case errors.Is(err, usecase.ErrCompanyNotFound):
		response.NotFound(w, "Company not found")
	case errors.Is(err, usecase.ErrTrainerInactive),
		errors.Is(err, usecase.ErrCompanyInactive),
		errors.Is(err, usecase.ErrPastBookingDate),
		errors.Is(err, usecase.ErrInvalidBookingDate),
		errors.Is(err, usecase.ErrInvalidStartTime),
		errors.Is(err, usecase.ErrInvalidDuration),
		errors.Is(err, service.ErrEmptyTrainingTypes):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &unknownType), errors.As(err, &notOffered):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidPayment):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrBookingNotOwned),
		errors.Is(err, usecase.ErrAdminOnly),
		errors.Is(err, entity.ErrActorNotAllowed):
		response.Forbidden(w, err.Error())
	case errors.As(err, &slotConflict):
		response.Conflict(w, err.Error())
	case errors.As(err, &transition):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrBookingNotEditable),
		errors.Is(err, usecase.ErrBookingStateChanged):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to process booking")
	}
}

// CreateBooking handles a company requesting a new training session
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), companyID, &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// UpdateBooking reschedules or annotates a booking
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBooking(r.Context(), bookingID, actor, &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

// GetBooking returns a single booking scoped to the caller's role
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID, actor)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// CancelBooking voids a booking before completion
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.CancelBooking(r.Context(), bookingID, actor)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

// ConfirmBooking lets the trainer accept an approved session
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.approvalUsecase.Confirm(r.Context(), bookingID, actor)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed successfully", booking)
}

// CompleteBooking marks a confirmed session as delivered
func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.approvalUsecase.Complete(r.Context(), bookingID, actor)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking completed successfully", booking)
}

// GetMyBookings lists the calling company's bookings
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, meta, err := h.queryUsecase.ListForCompany(r.Context(), companyID, filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings, meta)
}

// GetMySchedule lists approved bookings assigned to the calling trainer
func (h *BookingHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, meta, err := h.queryUsecase.ListForTrainer(r.Context(), trainerID, filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Schedule retrieved successfully", bookings, meta)
}
