package usecase

import (
	"context"
	"errors"

	"encontrapsi/internal/converter"
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/repository"
	"encontrapsi/internal/metrics"
	"encontrapsi/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPsychologistNotFound = errors.New("psychologist not found")

type DirectoryUsecase interface {
	Search(ctx context.Context, req *dto.DirectoryFilterRequest) (*dto.DirectoryResponse, error)
	MatchByAttempt(ctx context.Context, attemptID string) (*dto.DirectoryResponse, error)
	GetProfile(ctx context.Context, psychologistID uuid.UUID) (*dto.PsychologistResponse, error)
}

type directoryUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	psychologistRepo repository.PsychologistRepository
	directoryService *service.DirectoryService
	attemptStore     service.AttemptStore
	collector        metrics.Collector
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	psychologistRepo repository.PsychologistRepository,
	directoryService *service.DirectoryService,
	attemptStore service.AttemptStore,
	collector metrics.Collector,
) DirectoryUsecase {
	return &directoryUsecase{
		db:               db,
		log:              log,
		psychologistRepo: psychologistRepo,
		directoryService: directoryService,
		attemptStore:     attemptStore,
		collector:        collector,
	}
}

func (u *directoryUsecase) Search(ctx context.Context, req *dto.DirectoryFilterRequest) (*dto.DirectoryResponse, error) {
	records, err := u.psychologistRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load active psychologists: %+v", err)
		return nil, err
	}

	filter := converter.DirectoryFilterFromRequest(req)
	matched := u.directoryService.Filter(records, filter)

	u.collector.RecordDirectorySearch()

	return &dto.DirectoryResponse{
		Psychologists: converter.PsychologistsToResponses(matched),
		Total:         len(matched),
	}, nil
}

func (u *directoryUsecase) MatchByAttempt(ctx context.Context, attemptID string) (*dto.DirectoryResponse, error) {
	attempt, err := u.attemptStore.Find(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Result == nil {
		return nil, ErrQuizNotCompleted
	}

	records, err := u.psychologistRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load active psychologists: %+v", err)
		return nil, err
	}

	matched := u.directoryService.MatchByResult(records, attempt.Result)

	u.collector.RecordDirectorySearch()

	return &dto.DirectoryResponse{
		Psychologists: converter.PsychologistsToResponses(matched),
		Total:         len(matched),
	}, nil
}

func (u *directoryUsecase) GetProfile(ctx context.Context, psychologistID uuid.UUID) (*dto.PsychologistResponse, error) {
	profile, err := u.psychologistRepo.FindByUserID(u.db.WithContext(ctx), psychologistID)
	if err != nil {
		u.log.Warnf("Failed to find psychologist profile: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.IsDiscoverable() {
		// Inactive profiles are indistinguishable from missing ones.
		return nil, ErrPsychologistNotFound
	}

	return converter.PsychologistToResponse(profile), nil
}
