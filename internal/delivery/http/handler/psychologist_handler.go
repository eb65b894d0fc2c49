package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/delivery/http/middleware"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"
)

type PsychologistHandler struct {
	psychologistUsecase usecase.PsychologistUsecase
	validator           *validator.CustomValidator
}

func NewPsychologistHandler(psychologistUsecase usecase.PsychologistUsecase, validator *validator.CustomValidator) *PsychologistHandler {
	return &PsychologistHandler{
		psychologistUsecase: psychologistUsecase,
		validator:           validator,
	}
}

// Register creates a psychologist account. The profile starts with a
// pending subscription and is not listed until payment is approved.
func (h *PsychologistHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPsychologistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.psychologistUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case errors.Is(err, usecase.ErrCRPAlreadyExists):
			response.Error(w, http.StatusConflict, "CRP already registered", nil)
		default:
			response.InternalServerError(w, "Failed to register psychologist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Psychologist registered successfully", profile)
}

// GetOwnProfile returns the authenticated psychologist's profile with
// its subscription status
func (h *PsychologistHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.psychologistUsecase.GetOwnProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPsychologistNotFound):
			response.NotFound(w, "Psychologist profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved", profile)
}

// GetSubscription returns the latest subscription of the authenticated
// psychologist
func (h *PsychologistHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	subscription, err := h.psychologistUsecase.GetSubscription(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get subscription")
		return
	}
	if subscription == nil {
		response.NotFound(w, "No subscription found")
		return
	}

	payload := map[string]interface{}{
		"id":          subscription.ID,
		"plan":        subscription.Plan,
		"status":      subscription.Status,
		"amount":      subscription.Amount.Round(2).String(),
		"start_date":  subscription.StartDate.Format("2006-01-02"),
		"expiry_date": subscription.ExpiryDate.Format("2006-01-02"),
	}

	response.Success(w, http.StatusOK, "Subscription retrieved", payload)
}
