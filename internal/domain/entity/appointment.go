package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidStatusTransition is returned when an appointment status
// change is not allowed from the current status.
var ErrInvalidStatusTransition = errors.New("invalid appointment status transition")

// AppointmentStatus represents the status of an appointment request.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient's session request with a
// psychologist. The psychologist confirms or rejects a pending request;
// the patient may cancel a pending or confirmed one.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PsychologistID uuid.UUID         `gorm:"type:uuid;not null;index" json:"psychologist_id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date           time.Time         `gorm:"type:date;not null" json:"date"`
	Time           string            `gorm:"type:time;not null" json:"time"`
	Modality       Modality          `gorm:"type:varchar(20);not null" json:"modality"`
	PatientName    string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail   string            `gorm:"type:varchar(255);not null" json:"patient_email"`
	PatientPhone   string            `gorm:"type:varchar(20);not null" json:"patient_phone"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Psychologist PsychologistProfile `gorm:"foreignKey:PsychologistID" json:"psychologist,omitempty"`
	Patient      User                `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment awaits the psychologist's answer.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentPending
}

// Confirm moves a pending appointment to confirmed.
func (a *Appointment) Confirm() error {
	if a.Status != AppointmentPending {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentConfirmed
	return nil
}

// Reject moves a pending appointment to rejected, keeping the reason
// in the notes when given.
func (a *Appointment) Reject(reason string) error {
	if a.Status != AppointmentPending {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentRejected
	if reason != "" {
		a.Notes = reason
	}
	return nil
}

// Cancel moves a pending or confirmed appointment to cancelled.
func (a *Appointment) Cancel() error {
	if a.Status != AppointmentPending && a.Status != AppointmentConfirmed {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentCancelled
	return nil
}

// Complete moves a confirmed appointment to completed.
func (a *Appointment) Complete() error {
	if a.Status != AppointmentConfirmed {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentCompleted
	return nil
}
