package service

import (
	"errors"
	"reflect"
	"testing"

	"encontrapsi/internal/domain/entity"
)

func TestScoreSingleWinner(t *testing.T) {
	s := NewScoringService()

	answers := []entity.TherapyApproach{
		entity.ApproachPsicanalise,
		entity.ApproachPsicanalise,
		entity.ApproachPsicanalise,
		entity.ApproachSistemica,
		entity.ApproachSistemica,
		entity.ApproachGestalt,
		entity.ApproachPsicanalise,
	}

	result, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	wantScores := map[entity.TherapyApproach]int{
		entity.ApproachPsicanalise: 4,
		entity.ApproachSistemica:   2,
		entity.ApproachGestalt:     1,
		entity.ApproachHumanista:   0,
		entity.ApproachTCC:         0,
		entity.ApproachGrupo:       0,
	}
	if !reflect.DeepEqual(result.Scores, wantScores) {
		t.Errorf("Scores = %v, want %v", result.Scores, wantScores)
	}

	wantWinners := []entity.TherapyApproach{entity.ApproachPsicanalise}
	if !reflect.DeepEqual(result.Approaches, wantWinners) {
		t.Errorf("Approaches = %v, want %v", result.Approaches, wantWinners)
	}
}

func TestScoreTieKeepsDeclarationOrder(t *testing.T) {
	s := NewScoringService()

	// sistemica answered before psicanalise; winner order must still
	// follow declaration order.
	answers := []entity.TherapyApproach{
		entity.ApproachSistemica,
		entity.ApproachSistemica,
		entity.ApproachPsicanalise,
		entity.ApproachPsicanalise,
	}

	result, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	want := []entity.TherapyApproach{entity.ApproachPsicanalise, entity.ApproachSistemica}
	if !reflect.DeepEqual(result.Approaches, want) {
		t.Errorf("Approaches = %v, want %v", result.Approaches, want)
	}
}

func TestScoreTruncatesWinnersToTwo(t *testing.T) {
	s := NewScoringService()

	answers := []entity.TherapyApproach{
		entity.ApproachGestalt,
		entity.ApproachHumanista,
		entity.ApproachTCC,
	}

	result, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	// Three-way tie truncates to the first two in declaration order.
	want := []entity.TherapyApproach{entity.ApproachGestalt, entity.ApproachHumanista}
	if !reflect.DeepEqual(result.Approaches, want) {
		t.Errorf("Approaches = %v, want %v", result.Approaches, want)
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	s := NewScoringService()

	if _, err := s.Score(nil); !errors.Is(err, ErrNoAnswers) {
		t.Errorf("Score(nil) error = %v, want %v", err, ErrNoAnswers)
	}
}

func TestScoreRejectsUnknownApproach(t *testing.T) {
	s := NewScoringService()

	if _, err := s.Score([]entity.TherapyApproach{"astrologia"}); err == nil {
		t.Error("Score with unknown approach should fail")
	}
}

func TestScoreSumEqualsAnswerCount(t *testing.T) {
	s := NewScoringService()

	answers := []entity.TherapyApproach{
		entity.ApproachGrupo,
		entity.ApproachGrupo,
		entity.ApproachTCC,
		entity.ApproachHumanista,
		entity.ApproachGrupo,
		entity.ApproachTCC,
		entity.ApproachGestalt,
	}

	result, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	sum := 0
	for _, score := range result.Scores {
		sum += score
	}
	if sum != len(answers) {
		t.Errorf("score sum = %d, want %d", sum, len(answers))
	}

	if len(result.Scores) != len(entity.AllApproaches) {
		t.Errorf("Scores has %d entries, want %d", len(result.Scores), len(entity.AllApproaches))
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	s := NewScoringService()

	answers := []entity.TherapyApproach{
		entity.ApproachTCC,
		entity.ApproachGrupo,
		entity.ApproachTCC,
	}

	first, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	second, err := s.Score(answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score not deterministic: %v vs %v", first, second)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := NewScoringService()

	questions := make([]entity.Question, 7)
	for i := range questions {
		questions[i] = entity.Question{ID: uint(i + 1)}
	}

	shuffled := s.Shuffle(questions)

	if len(shuffled) != len(questions) {
		t.Fatalf("Shuffle returned %d questions, want %d", len(shuffled), len(questions))
	}

	seen := make(map[uint]bool, len(shuffled))
	for _, q := range shuffled {
		if seen[q.ID] {
			t.Fatalf("question %d appears twice", q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range questions {
		if !seen[q.ID] {
			t.Fatalf("question %d missing after shuffle", q.ID)
		}
	}
}

func TestShuffleLeavesInputUnmodified(t *testing.T) {
	s := NewScoringService()

	questions := []entity.Question{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	original := make([]entity.Question, len(questions))
	copy(original, questions)

	s.Shuffle(questions)

	if !reflect.DeepEqual(questions, original) {
		t.Errorf("Shuffle modified its input: %v", questions)
	}
}

func TestShuffleVariesOrder(t *testing.T) {
	s := NewScoringService()

	questions := make([]entity.Question, 7)
	for i := range questions {
		questions[i] = entity.Question{ID: uint(i + 1)}
	}

	// Over many runs the first position should not be constant. The
	// chance of 100 identical first elements under a fair shuffle is
	// (1/7)^99.
	firstIDs := make(map[uint]bool)
	for i := 0; i < 100; i++ {
		firstIDs[s.Shuffle(questions)[0].ID] = true
	}

	if len(firstIDs) < 2 {
		t.Error("shuffle produced the same first question 100 times")
	}
}
