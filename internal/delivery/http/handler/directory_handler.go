package handler

import (
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/service"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// Search lists active psychologists matching the query filters
func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := dto.DirectoryFilterRequest{
		Term:       query.Get("term"),
		Approach:   query.Get("approach"),
		State:      query.Get("state"),
		City:       query.Get("city"),
		Modalities: query["modality"],
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.directoryUsecase.Search(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to search psychologists")
		return
	}

	response.Success(w, http.StatusOK, "Psychologists retrieved", result)
}

// Match lists active psychologists practicing the winner approaches of
// a completed quiz attempt
func (h *DirectoryHandler) Match(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	result, err := h.directoryUsecase.MatchByAttempt(r.Context(), attemptID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			response.NotFound(w, "Quiz attempt not found or expired")
		case errors.Is(err, usecase.ErrQuizNotCompleted):
			response.Error(w, http.StatusConflict, "Quiz attempt not completed yet", nil)
		default:
			response.InternalServerError(w, "Failed to match psychologists")
		}
		return
	}

	response.Success(w, http.StatusOK, "Matched psychologists retrieved", result)
}

// GetProfile returns one discoverable psychologist profile
func (h *DirectoryHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid psychologist ID", nil)
		return
	}

	profile, err := h.directoryUsecase.GetProfile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPsychologistNotFound):
			response.NotFound(w, "Psychologist not found")
		default:
			response.InternalServerError(w, "Failed to get psychologist profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Psychologist profile retrieved", profile)
}
