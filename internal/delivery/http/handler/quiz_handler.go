package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/service"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/response"
	"encontrapsi/pkg/validator"

	"github.com/gorilla/mux"
)

type QuizHandler struct {
	quizUsecase usecase.QuizUsecase
	validator   *validator.CustomValidator
}

func NewQuizHandler(quizUsecase usecase.QuizUsecase, validator *validator.CustomValidator) *QuizHandler {
	return &QuizHandler{
		quizUsecase: quizUsecase,
		validator:   validator,
	}
}

// Start creates a new attempt with a freshly shuffled question order
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.quizUsecase.StartQuiz(r.Context())
	if err != nil {
		if errors.Is(err, entity.ErrInvalidQuestionBank) {
			response.InternalServerError(w, "Quiz is unavailable")
			return
		}
		response.InternalServerError(w, "Failed to start quiz")
		return
	}

	response.Success(w, http.StatusCreated, "Quiz started", result)
}

// Answer records one answer for the attempt in the URL
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	var req dto.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.quizUsecase.Answer(r.Context(), attemptID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			response.NotFound(w, "Quiz attempt not found or expired")
		case errors.Is(err, usecase.ErrQuestionNotFound), errors.Is(err, usecase.ErrOptionNotFound):
			response.Error(w, http.StatusBadRequest, "Unknown question or option", nil)
		case errors.Is(err, entity.ErrAnswerOutOfRange):
			response.Error(w, http.StatusConflict, "Answer does not match the current question", nil)
		case errors.Is(err, entity.ErrAttemptCompleted):
			response.Error(w, http.StatusConflict, "Quiz attempt already completed", nil)
		default:
			response.InternalServerError(w, "Failed to record answer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Answer recorded", result)
}

// Result returns the final result of a completed attempt
func (h *QuizHandler) Result(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	result, err := h.quizUsecase.GetResult(r.Context(), attemptID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			response.NotFound(w, "Quiz attempt not found or expired")
		case errors.Is(err, usecase.ErrQuizNotCompleted):
			response.Error(w, http.StatusConflict, "Quiz attempt not completed yet", nil)
		default:
			response.InternalServerError(w, "Failed to get quiz result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Quiz result retrieved", result)
}
