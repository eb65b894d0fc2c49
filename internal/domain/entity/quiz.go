package entity

import (
	"errors"
	"time"
)

var (
	// ErrAttemptCompleted is returned when answering an attempt that
	// already has a result.
	ErrAttemptCompleted = errors.New("quiz attempt already completed")

	// ErrAnswerOutOfRange is returned when an answer does not belong to
	// the attempt's current question.
	ErrAnswerOutOfRange = errors.New("answer does not match current question")
)

// QuizResult is the immutable outcome of a completed attempt: one count
// per approach plus the winning approaches (ties allowed, at most two,
// in declaration order).
type QuizResult struct {
	Scores     map[TherapyApproach]int `json:"scores"`
	Approaches []TherapyApproach       `json:"approaches"`
}

// MaxScore returns the highest count in the result.
func (r *QuizResult) MaxScore() int {
	max := 0
	for _, score := range r.Scores {
		if score > max {
			max = score
		}
	}
	return max
}

// QuizAttempt is the in-progress record of one user's path through the
// shuffled question set. Attempts are transient: they live in the
// attempt store with a TTL and are simply discarded when abandoned.
type QuizAttempt struct {
	ID          string            `json:"id"`
	QuestionIDs []uint            `json:"question_ids"`
	Answers     []TherapyApproach `json:"answers"`
	Result      *QuizResult       `json:"result,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CurrentQuestionID returns the ID of the question awaiting an answer.
// ok is false once all questions are answered.
func (a *QuizAttempt) CurrentQuestionID() (uint, bool) {
	if len(a.Answers) >= len(a.QuestionIDs) {
		return 0, false
	}
	return a.QuestionIDs[len(a.Answers)], true
}

// Completed reports whether every question has been answered.
func (a *QuizAttempt) Completed() bool {
	return len(a.Answers) >= len(a.QuestionIDs)
}

// Answer appends the chosen approach for the given question. The
// question must be the attempt's current one; answers arrive strictly
// in question order.
func (a *QuizAttempt) Answer(questionID uint, approach TherapyApproach) error {
	if a.Result != nil {
		return ErrAttemptCompleted
	}

	current, ok := a.CurrentQuestionID()
	if !ok {
		return ErrAttemptCompleted
	}
	if current != questionID {
		return ErrAnswerOutOfRange
	}

	a.Answers = append(a.Answers, approach)
	return nil
}
