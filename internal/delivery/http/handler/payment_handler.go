package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreatePreference starts a subscription checkout and returns the
// provider redirect link
func (h *PaymentHandler) CreatePreference(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	preference, err := h.paymentUsecase.CreatePreference(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingPaymentData):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrNoInitPoint):
			response.BadGateway(w, "Payment provider returned no checkout link")
		default:
			response.BadGateway(w, "Failed to create payment preference")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment preference created", preference)
}

// Webhook receives Mercado Pago payment notifications. Always answers
// 200 on handled notifications so the provider stops retrying.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.paymentUsecase.HandleWebhook(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to process payment notification")
		return
	}

	response.Success(w, http.StatusOK, "Notification processed", nil)
}

// Return handles the browser coming back from checkout. The URL path
// carries the provider outcome; query parameters carry payment data.
func (h *PaymentHandler) Return(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result := h.paymentUsecase.InterpretReturn(
		query.Get("payment_id"),
		query.Get("status"),
		query.Get("external_reference"),
	)

	response.Success(w, http.StatusOK, "Payment return processed", result)
}
