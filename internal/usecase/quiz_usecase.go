package usecase

import (
	"context"
	"errors"

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
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrQuizNotCompleted = errors.New("quiz attempt not completed yet")
)

type QuizUsecase interface {
	StartQuiz(ctx context.Context) (*dto.StartQuizResponse, error)
	Answer(ctx context.Context, attemptID string, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
	GetResult(ctx context.Context, attemptID string) (*dto.QuizResultResponse, error)
}

type quizUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	questionRepo   repository.QuestionRepository
	scoringService *service.ScoringService
	attemptStore   service.AttemptStore
	collector      metrics.Collector
}

func NewQuizUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	questionRepo repository.QuestionRepository,
	scoringService *service.ScoringService,
	attemptStore service.AttemptStore,
	collector metrics.Collector,
) QuizUsecase {
	return &quizUsecase{
		db:             db,
		log:            log,
		questionRepo:   questionRepo,
		scoringService: scoringService,
		attemptStore:   attemptStore,
		collector:      collector,
	}
}

func (u *quizUsecase) StartQuiz(ctx context.Context) (*dto.StartQuizResponse, error) {
	questions, err := u.questionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load questions: %+v", err)
		return nil, err
	}
	if len(questions) == 0 {
		return nil, entity.ErrInvalidQuestionBank
	}

	shuffled := u.scoringService.Shuffle(questions)

	questionIDs := make([]uint, len(shuffled))
	for i, q := range shuffled {
		questionIDs[i] = q.ID
	}

	attempt := &entity.QuizAttempt{
		ID:          uuid.New().String(),
		QuestionIDs: questionIDs,
	}

	if err := u.attemptStore.Save(ctx, attempt); err != nil {
		return nil, err
	}

	u.collector.RecordQuizStarted()

	return &dto.StartQuizResponse{
		AttemptID:     attempt.ID,
		QuestionTotal: len(shuffled),
		Question:      converter.QuestionToResponse(&shuffled[0]),
	}, nil
}

func (u *quizUsecase) Answer(ctx context.Context, attemptID string, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	attempt, err := u.attemptStore.Find(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	questions, err := u.questionRepo.FindByIDs(u.db.WithContext(ctx), []uint{req.QuestionID})
	if err != nil {
		u.log.Warnf("Failed to load question %d: %+v", req.QuestionID, err)
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrQuestionNotFound
	}

	option := questions[0].OptionByID(req.OptionID)
	if option == nil {
		return nil, ErrOptionNotFound
	}

	if err := attempt.Answer(req.QuestionID, option.Approach); err != nil {
		return nil, err
	}

	if attempt.Completed() {
		result, err := u.scoringService.Score(attempt.Answers)
		if err != nil {
			return nil, err
		}
		attempt.Result = result

		if err := u.attemptStore.Save(ctx, attempt); err != nil {
			return nil, err
		}

		for _, winner := range result.Approaches {
			u.collector.RecordQuizCompleted(string(winner))
		}

		return &dto.AnswerResponse{
			AttemptID:     attempt.ID,
			QuestionIndex: len(attempt.Answers),
			QuestionTotal: len(attempt.QuestionIDs),
			Result:        converter.QuizResultToResponse(result),
		}, nil
	}

	if err := u.attemptStore.Save(ctx, attempt); err != nil {
		return nil, err
	}

	nextID, _ := attempt.CurrentQuestionID()
	next, err := u.questionRepo.FindByIDs(u.db.WithContext(ctx), []uint{nextID})
	if err != nil {
		u.log.Warnf("Failed to load question %d: %+v", nextID, err)
		return nil, err
	}
	if len(next) == 0 {
		return nil, ErrQuestionNotFound
	}

	return &dto.AnswerResponse{
		AttemptID:     attempt.ID,
		QuestionIndex: len(attempt.Answers),
		QuestionTotal: len(attempt.QuestionIDs),
		Question:      converter.QuestionToResponse(&next[0]),
	}, nil
}

func (u *quizUsecase) GetResult(ctx context.Context, attemptID string) (*dto.QuizResultResponse, error) {
	attempt, err := u.attemptStore.Find(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Result == nil {
		return nil, ErrQuizNotCompleted
	}
	return converter.QuizResultToResponse(attempt.Result), nil
}
