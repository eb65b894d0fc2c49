package dto

// Request DTOs

type AnswerRequest struct {
	QuestionID uint `json:"question_id" validate:"required"`
	OptionID   uint `json:"option_id" validate:"required"`
}

// Response DTOs

type QuestionOptionResponse struct {
	ID     uint   `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type QuestionResponse struct {
	ID      uint                     `json:"id"`
	Prompt  string                   `json:"prompt"`
	Options []QuestionOptionResponse `json:"options"`
}

type StartQuizResponse struct {
	AttemptID     string            `json:"attempt_id"`
	QuestionTotal int               `json:"question_total"`
	Question      *QuestionResponse `json:"question"`
}

// AnswerResponse carries either the next question or, on the last
// answer, the final result.
type AnswerResponse struct {
	AttemptID     string              `json:"attempt_id"`
	QuestionIndex int                 `json:"question_index"`
	QuestionTotal int                 `json:"question_total"`
	Question      *QuestionResponse   `json:"question,omitempty"`
	Result        *QuizResultResponse `json:"result,omitempty"`
}

type QuizResultResponse struct {
	Scores     map[string]int    `json:"scores"`
	Approaches []TherapyResponse `json:"approaches"`
}

type TherapyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TherapyDetailResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
}
