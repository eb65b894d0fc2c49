package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"encontrapsi/internal/converter"
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/domain/repository"
	"encontrapsi/internal/metrics"
	"encontrapsi/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAppointmentOwner = errors.New("appointment belongs to another user")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, psychologistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Reject(ctx context.Context, psychologistID, appointmentID uuid.UUID, req *dto.RejectAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, psychologistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error)
	ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	psychologistRepo    repository.PsychologistRepository
	notificationService service.NotificationService
	collector           metrics.Collector
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	psychologistRepo repository.PsychologistRepository,
	notificationService service.NotificationService,
	collector metrics.Collector,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		psychologistRepo:    psychologistRepo,
		notificationService: notificationService,
		collector:           collector,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	psychologistID, err := uuid.Parse(req.PsychologistID)
	if err != nil {
		return nil, ErrPsychologistNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Requests only go to discoverable psychologists.
	profile, err := u.psychologistRepo.FindByUserID(tx, psychologistID)
	if err != nil {
		u.log.Warnf("Failed to find psychologist: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.IsDiscoverable() {
		return nil, ErrPsychologistNotFound
	}

	appointment := &entity.Appointment{
		PsychologistID: psychologistID,
		PatientID:      patientID,
		Date:           date,
		Time:           req.Time,
		Modality:       entity.Modality(req.Modality),
		PatientName:    req.PatientName,
		PatientEmail:   req.PatientEmail,
		PatientPhone:   req.PatientPhone,
		Status:         entity.AppointmentPending,
		Notes:          req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.notificationService.Notify(ctx, tx, psychologistID,
		entity.NotificationAppointmentRequest,
		"Nova solicitação de consulta",
		fmt.Sprintf("%s solicitou uma consulta em %s às %s.", req.PatientName, req.Date, req.Time),
		appointment.ID.String())

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.collector.RecordAppointmentTransition(string(entity.AppointmentPending))

	appointment.Psychologist = *profile
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, psychologistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, func(appointment *entity.Appointment) error {
		if appointment.PsychologistID != psychologistID {
			return ErrNotAppointmentOwner
		}
		return appointment.Confirm()
	}, func(tx *gorm.DB, appointment *entity.Appointment) {
		u.notificationService.Notify(ctx, tx, appointment.PatientID,
			entity.NotificationAppointmentConfirmed,
			"Consulta confirmada",
			fmt.Sprintf("Sua consulta de %s às %s foi confirmada.", appointment.Date.Format("2006-01-02"), appointment.Time),
			appointment.ID.String())
	})
}

func (u *appointmentUsecase) Reject(ctx context.Context, psychologistID, appointmentID uuid.UUID, req *dto.RejectAppointmentRequest) (*dto.AppointmentResponse, error) {
	reason := ""
	if req != nil {
		reason = req.Reason
	}
	return u.transition(ctx, appointmentID, func(appointment *entity.Appointment) error {
		if appointment.PsychologistID != psychologistID {
			return ErrNotAppointmentOwner
		}
		return appointment.Reject(reason)
	}, func(tx *gorm.DB, appointment *entity.Appointment) {
		u.notificationService.Notify(ctx, tx, appointment.PatientID,
			entity.NotificationAppointmentRejected,
			"Consulta recusada",
			fmt.Sprintf("Sua solicitação de consulta de %s às %s foi recusada.", appointment.Date.Format("2006-01-02"), appointment.Time),
			appointment.ID.String())
	})
}

func (u *appointmentUsecase) Cancel(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, func(appointment *entity.Appointment) error {
		if appointment.PatientID != patientID {
			return ErrNotAppointmentOwner
		}
		return appointment.Cancel()
	}, func(tx *gorm.DB, appointment *entity.Appointment) {
		u.notificationService.Notify(ctx, tx, appointment.PsychologistID,
			entity.NotificationAppointmentCancelled,
			"Consulta cancelada",
			fmt.Sprintf("A consulta de %s às %s foi cancelada pelo paciente.", appointment.Date.Format("2006-01-02"), appointment.Time),
			appointment.ID.String())
	})
}

func (u *appointmentUsecase) Complete(ctx context.Context, psychologistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, func(appointment *entity.Appointment) error {
		if appointment.PsychologistID != psychologistID {
			return ErrNotAppointmentOwner
		}
		return appointment.Complete()
	}, nil)
}

// transition loads, mutates and saves one appointment in a transaction.
// notify runs inside the transaction after a successful mutation.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	appointmentID uuid.UUID,
	mutate func(*entity.Appointment) error,
	notify func(*gorm.DB, *entity.Appointment),
) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := mutate(appointment); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if notify != nil {
		notify(tx, appointment)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.collector.RecordAppointmentTransition(string(appointment.Status))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPsychologistID(u.db.WithContext(ctx), psychologistID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}
