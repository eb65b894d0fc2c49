package dto

// Request DTOs

type FlowEventRequest struct {
	Type          string                       `json:"type" validate:"required,oneof=go_home start_quiz answer view_list view_profile view_therapy psychologist_signup accept_terms submit_registration payment_approved"`
	TermsAccepted bool                         `json:"terms_accepted,omitempty"`
	Registration  *RegisterPsychologistRequest `json:"registration,omitempty"`
}

// Response DTOs

type FlowStateResponse struct {
	SessionID     string `json:"session_id"`
	Step          string `json:"step"`
	QuestionIndex int    `json:"question_index"`
	QuestionTotal int    `json:"question_total"`
	TermsAccepted bool   `json:"terms_accepted"`
}
