package handler

import (
	"encoding/json"
	"net/http"

	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/delivery/http/middleware"
	"go-training-booking/internal/usecase"
	"go-training-booking/pkg/response"
	"go-training-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminBookingHandler struct {
	bookingUsecase  usecase.BookingUsecase
	approvalUsecase usecase.BookingApprovalUsecase
	queryUsecase    usecase.BookingQueryUsecase
	validator       *validator.CustomValidator
}

func NewAdminBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	approvalUsecase usecase.BookingApprovalUsecase,
	queryUsecase usecase.BookingQueryUsecase,
	validator *validator.CustomValidator,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		bookingUsecase:  bookingUsecase,
		approvalUsecase: approvalUsecase,
		queryUsecase:    queryUsecase,
		validator:       validator,
	}
}

// ListBookings returns the unrestricted admin view
func (h *AdminBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, meta, err := h.queryUsecase.ListForAdmin(r.Context(), filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings, meta)
}

// ListPendingApprovals returns the approval backlog
func (h *AdminBookingHandler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	bookings, meta, err := h.queryUsecase.ListPendingApprovals(r.Context(), filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get pending approvals")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Pending approvals retrieved successfully", bookings, meta)
}

// ApproveBooking approves a booking and attaches its payment confirmation
func (h *AdminBookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.ApproveBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.approvalUsecase.ApproveWithPayment(r.Context(), bookingID, adminID, &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking approved successfully", booking)
}

// RejectBooking declines a pending booking
func (h *AdminBookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.approvalUsecase.Reject(r.Context(), bookingID, adminID, &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking rejected successfully", booking)
}

// DeleteBooking removes a booking record entirely
func (h *AdminBookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
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

	if err := h.bookingUsecase.DeleteBooking(r.Context(), bookingID, actor); err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}
