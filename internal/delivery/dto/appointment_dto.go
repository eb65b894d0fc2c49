package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PsychologistID string `json:"psychologist_id" validate:"required,uuid"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	Modality       string `json:"modality" validate:"required,oneof=online presencial"`
	PatientName    string `json:"patient_name" validate:"required,min=2"`
	PatientEmail   string `json:"patient_email" validate:"required,email"`
	PatientPhone   string `json:"patient_phone" validate:"required,min=10,max=20"`
	Notes          string `json:"notes" validate:"omitempty"`
}

type RejectAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PsychologistID   uuid.UUID `json:"psychologist_id"`
	PsychologistName string    `json:"psychologist_name,omitempty"`
	PatientID        uuid.UUID `json:"patient_id"`
	PatientName      string    `json:"patient_name"`
	PatientEmail     string    `json:"patient_email"`
	PatientPhone     string    `json:"patient_phone"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Modality         string    `json:"modality"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
