package entity

import (
	"errors"
	"testing"
)

func newAttempt() *QuizAttempt {
	return &QuizAttempt{
		ID:          "attempt-1",
		QuestionIDs: []uint{3, 1, 2},
	}
}

func TestAttemptAnswerInOrder(t *testing.T) {
	a := newAttempt()

	id, ok := a.CurrentQuestionID()
	if !ok || id != 3 {
		t.Fatalf("CurrentQuestionID = %d, %v; want 3, true", id, ok)
	}

	if err := a.Answer(3, ApproachTCC); err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	id, ok = a.CurrentQuestionID()
	if !ok || id != 1 {
		t.Errorf("CurrentQuestionID = %d, %v; want 1, true", id, ok)
	}
	if a.Completed() {
		t.Error("attempt reported completed after one answer")
	}
}

func TestAttemptAnswerWrongQuestion(t *testing.T) {
	a := newAttempt()

	// Question 1 is in the attempt but is not the current one.
	if err := a.Answer(1, ApproachGrupo); !errors.Is(err, ErrAnswerOutOfRange) {
		t.Errorf("error = %v, want ErrAnswerOutOfRange", err)
	}
	if len(a.Answers) != 0 {
		t.Errorf("rejected answer was recorded: %v", a.Answers)
	}
}

func TestAttemptCompletion(t *testing.T) {
	a := newAttempt()

	for _, id := range []uint{3, 1, 2} {
		if err := a.Answer(id, ApproachHumanista); err != nil {
			t.Fatalf("Answer(%d) returned error: %v", id, err)
		}
	}

	if !a.Completed() {
		t.Error("attempt not completed after answering every question")
	}
	if _, ok := a.CurrentQuestionID(); ok {
		t.Error("CurrentQuestionID should report no remaining question")
	}
	if err := a.Answer(2, ApproachGestalt); !errors.Is(err, ErrAttemptCompleted) {
		t.Errorf("error = %v, want ErrAttemptCompleted", err)
	}
}

func TestAttemptAnswerAfterResult(t *testing.T) {
	a := newAttempt()
	a.Result = &QuizResult{Approaches: []TherapyApproach{ApproachPsicanalise}}

	if err := a.Answer(3, ApproachPsicanalise); !errors.Is(err, ErrAttemptCompleted) {
		t.Errorf("error = %v, want ErrAttemptCompleted", err)
	}
}

func TestQuizResultMaxScore(t *testing.T) {
	r := &QuizResult{Scores: map[TherapyApproach]int{
		ApproachPsicanalise: 4,
		ApproachSistemica:   2,
		ApproachGestalt:     1,
	}}

	if got := r.MaxScore(); got != 4 {
		t.Errorf("MaxScore = %d, want 4", got)
	}

	empty := &QuizResult{}
	if got := empty.MaxScore(); got != 0 {
		t.Errorf("MaxScore on empty result = %d, want 0", got)
	}
}
