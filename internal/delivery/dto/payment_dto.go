package dto

// Request DTOs

type CreatePreferenceRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	CRP      string `json:"crp" validate:"required"`
}

// WebhookRequest is the Mercado Pago notification payload.
type WebhookRequest struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

type WebhookData struct {
	ID string `json:"id"`
}

// Response DTOs

type PreferenceResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// PaymentReturnResponse reports the outcome of a checkout return:
// success, pending or failure.
type PaymentReturnResponse struct {
	Outcome   string `json:"outcome"`
	PaymentID string `json:"payment_id,omitempty"`
	Status    string `json:"status,omitempty"`
	CRP       string `json:"crp,omitempty"`
}
