package handler

import (
	"encoding/json"
	"errors"
	"net/http"

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

type TrainerHandler struct {
	trainerUsecase usecase.TrainerUsecase
	validator      *validator.CustomValidator
}

func NewTrainerHandler(trainerUsecase usecase.TrainerUsecase, validator *validator.CustomValidator) *TrainerHandler {
	return &TrainerHandler{
		trainerUsecase: trainerUsecase,
		validator:      validator,
	}
}

// ListTrainers returns the active trainer directory
func (h *TrainerHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.trainerUsecase.ListTrainers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get trainers")
		return
	}

	response.Success(w, http.StatusOK, "Trainers retrieved successfully", trainers)
}

// GetTrainer returns one trainer's public profile
func (h *TrainerHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	trainerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid trainer ID", nil)
		return
	}

	trainer, err := h.trainerUsecase.GetTrainer(r.Context(), trainerID)
	if err != nil {
		switch err {
		case usecase.ErrTrainerNotFound:
			response.NotFound(w, "Trainer not found")
		default:
			response.InternalServerError(w, "Failed to get trainer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Trainer retrieved successfully", trainer)
}

// UpdateCatalog replaces a trainer's offered training types
func (h *TrainerHandler) UpdateCatalog(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	trainerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid trainer ID", nil)
		return
	}

	var req dto.UpdateCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	trainer, err := h.trainerUsecase.UpdateCatalog(r.Context(), trainerID, actor, &req)
	if err != nil {
		var unknownType *service.UnknownTrainingTypeError
		switch {
		case errors.Is(err, usecase.ErrTrainerNotFound):
			response.NotFound(w, "Trainer not found")
		case errors.Is(err, entity.ErrActorNotAllowed):
			response.Forbidden(w, "You can only update your own catalogue")
		case errors.Is(err, service.ErrEmptyTrainingTypes), errors.As(err, &unknownType):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update catalogue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Catalogue updated successfully", trainer)
}

// UpdateMyProfile updates the calling trainer's own profile fields
func (h *TrainerHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateTrainerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	trainer, err := h.trainerUsecase.UpdateProfile(r.Context(), trainerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTrainerNotFound:
			response.NotFound(w, "Trainer not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", trainer)
}

// DeactivateTrainer disables a trainer account (admin only)
func (h *TrainerHandler) DeactivateTrainer(w http.ResponseWriter, r *http.Request) {
	trainerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid trainer ID", nil)
		return
	}

	if err := h.trainerUsecase.Deactivate(r.Context(), trainerID); err != nil {
		switch err {
		case usecase.ErrTrainerNotFound:
			response.NotFound(w, "Trainer not found")
		default:
			response.InternalServerError(w, "Failed to deactivate trainer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Trainer deactivated successfully", nil)
}
