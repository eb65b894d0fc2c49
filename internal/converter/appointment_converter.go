package converter

import (
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		PsychologistID:   appointment.PsychologistID,
		PsychologistName: appointment.Psychologist.User.FullName,
		PatientID:        appointment.PatientID,
		PatientName:      appointment.PatientName,
		PatientEmail:     appointment.PatientEmail,
		PatientPhone:     appointment.PatientPhone,
		Date:             appointment.Date.Format("2006-01-02"),
		Time:             appointment.Time,
		Modality:         string(appointment.Modality),
		Status:           string(appointment.Status),
		Notes:            appointment.Notes,
		CreatedAt:        appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of appointments to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
