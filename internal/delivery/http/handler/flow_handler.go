package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/flow"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"

	"github.com/google/uuid"
)

// sessionHeader identifies the navigation session. A missing header
// starts a fresh session.
const sessionHeader = "X-Session-ID"

type FlowHandler struct {
	flowUsecase usecase.FlowUsecase
	validator   *validator.CustomValidator
}

func NewFlowHandler(flowUsecase usecase.FlowUsecase, validator *validator.CustomValidator) *FlowHandler {
	return &FlowHandler{
		flowUsecase: flowUsecase,
		validator:   validator,
	}
}

// GetState returns the current navigation state of the session
func (h *FlowHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	state, err := h.flowUsecase.GetState(r.Context(), sessionID)
	if err != nil {
		response.InternalServerError(w, "Failed to get navigation state")
		return
	}

	response.Success(w, http.StatusOK, "Navigation state retrieved", state)
}

// ApplyEvent runs one navigation transition
func (h *FlowHandler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	var req dto.FlowEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.flowUsecase.ApplyEvent(r.Context(), sessionID, &req)
	if err != nil {
		var validationErr *flow.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Error(w, http.StatusUnprocessableEntity, "Registration form is incomplete", map[string]interface{}{
				"missing_fields": validationErr.MissingFields,
			})
		case errors.Is(err, flow.ErrTermsNotAccepted):
			response.Error(w, http.StatusUnprocessableEntity, "Terms must be accepted to continue", nil)
		case errors.Is(err, flow.ErrInvalidTransition):
			response.Error(w, http.StatusConflict, "Action not allowed on the current screen", nil)
		default:
			response.InternalServerError(w, "Failed to apply navigation event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Navigation state updated", state)
}
