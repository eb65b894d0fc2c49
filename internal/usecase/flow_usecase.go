package usecase

import (
	"context"
	"errors"

	"encontrapsi/internal/converter"
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/repository"
	"encontrapsi/internal/flow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FlowUsecase interface {
	GetState(ctx context.Context, sessionID string) (*dto.FlowStateResponse, error)
	ApplyEvent(ctx context.Context, sessionID string, req *dto.FlowEventRequest) (*dto.FlowStateResponse, error)
}

type flowUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	questionRepo repository.QuestionRepository
	machine      *flow.Machine
	store        flow.Store
}

func NewFlowUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	questionRepo repository.QuestionRepository,
	machine *flow.Machine,
	store flow.Store,
) FlowUsecase {
	return &flowUsecase{
		db:           db,
		log:          log,
		questionRepo: questionRepo,
		machine:      machine,
		store:        store,
	}
}

// GetState returns the session state, initializing new sessions at home.
func (u *flowUsecase) GetState(ctx context.Context, sessionID string) (*dto.FlowStateResponse, error) {
	state, err := u.store.Find(ctx, sessionID)
	if errors.Is(err, flow.ErrSessionNotFound) {
		state, err = u.freshState(ctx)
		if err != nil {
			return nil, err
		}
		if err := u.store.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return stateToResponse(sessionID, state), nil
}

func (u *flowUsecase) ApplyEvent(ctx context.Context, sessionID string, req *dto.FlowEventRequest) (*dto.FlowStateResponse, error) {
	state, err := u.store.Find(ctx, sessionID)
	if errors.Is(err, flow.ErrSessionNotFound) {
		state, err = u.freshState(ctx)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	event := flow.Event{
		Type:          flow.EventType(req.Type),
		TermsAccepted: req.TermsAccepted,
	}
	if req.Registration != nil {
		event.Registration = converter.RegistrationFromRequest(req.Registration)
	}

	next, err := u.machine.Apply(state, event)
	if err != nil {
		return nil, err
	}

	if err := u.store.Save(ctx, sessionID, next); err != nil {
		return nil, err
	}

	return stateToResponse(sessionID, next), nil
}

func (u *flowUsecase) freshState(ctx context.Context) (flow.State, error) {
	questions, err := u.questionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count questions: %+v", err)
		return flow.State{}, err
	}
	return flow.NewState(len(questions)), nil
}

func stateToResponse(sessionID string, state flow.State) *dto.FlowStateResponse {
	return &dto.FlowStateResponse{
		SessionID:     sessionID,
		Step:          string(state.Step),
		QuestionIndex: state.QuestionIndex,
		QuestionTotal: state.QuestionTotal,
		TermsAccepted: state.TermsAccepted,
	}
}
