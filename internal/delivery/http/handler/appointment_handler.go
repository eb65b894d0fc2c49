package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/delivery/http/middleware"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create files a session request with a psychologist
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPsychologistNotFound):
			response.NotFound(w, "Psychologist not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment requested", appointment)
}

// Confirm accepts a pending appointment (psychologist only)
func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Confirm(r.Context(), userID, appointmentID)
	}, "Appointment confirmed")
}

// Reject declines a pending appointment (psychologist only)
func (h *AppointmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectAppointmentRequest
	json.NewDecoder(r.Body).Decode(&req)

	h.transition(w, r, func(userID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Reject(r.Context(), userID, appointmentID, &req)
	}, "Appointment rejected")
}

// Cancel cancels a pending or confirmed appointment (patient only)
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Cancel(r.Context(), userID, appointmentID)
	}, "Appointment cancelled")
}

// Complete marks a confirmed appointment as done (psychologist only)
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
		return h.appointmentUsecase.Complete(r.Context(), userID, appointmentID)
	}, "Appointment completed")
}

func (h *AppointmentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(userID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error),
	message string,
) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := apply(userID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotAppointmentOwner):
			response.Forbidden(w, "Appointment belongs to another user")
		case errors.Is(err, entity.ErrInvalidStatusTransition):
			response.Error(w, http.StatusConflict, "Status change not allowed", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, appointment)
}

// List returns the caller's appointments, patient or psychologist side
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	var (
		appointments []dto.AppointmentResponse
		err          error
	)
	if roleID == entity.RoleIDPsychologist {
		appointments, err = h.appointmentUsecase.ListForPsychologist(r.Context(), userID)
	} else {
		appointments, err = h.appointmentUsecase.ListForPatient(r.Context(), userID)
	}
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", appointments)
}
