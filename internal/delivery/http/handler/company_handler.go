package handler

import (
	"encoding/json"
	"net/http"

	"go-training-booking/internal/delivery/dto"
	"go-training-booking/internal/delivery/http/middleware"
	"go-training-booking/internal/usecase"
	"go-training-booking/pkg/response"
	"go-training-booking/pkg/validator"
)

type CompanyHandler struct {
	companyUsecase usecase.CompanyUsecase
	validator      *validator.CustomValidator
}

func NewCompanyHandler(companyUsecase usecase.CompanyUsecase, validator *validator.CustomValidator) *CompanyHandler {
	return &CompanyHandler{
		companyUsecase: companyUsecase,
		validator:      validator,
	}
}

// GetMyProfile returns the calling company's profile
func (h *CompanyHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	company, err := h.companyUsecase.GetCompany(r.Context(), companyID)
	if err != nil {
		switch err {
		case usecase.ErrCompanyNotFound:
			response.NotFound(w, "Company not found")
		default:
			response.InternalServerError(w, "Failed to get company profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Company profile retrieved successfully", company)
}

// UpdateMyProfile updates the calling company's profile fields
func (h *CompanyHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	company, err := h.companyUsecase.UpdateProfile(r.Context(), companyID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCompanyNotFound:
			response.NotFound(w, "Company not found")
		default:
			response.InternalServerError(w, "Failed to update company profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Company profile updated successfully", company)
}
