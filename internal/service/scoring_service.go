package service

import (
	"errors"
	"math/rand"

	"encontrapsi/internal/domain/entity"
)

// ErrNoAnswers is returned when scoring an empty answer sequence.
// An empty quiz has no meaningful winner and must be rejected.
var ErrNoAnswers = errors.New("cannot score an empty answer sequence")

// maxWinners bounds how many tied approaches a result surfaces.
const maxWinners = 2

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Shuffle returns a new slice with the questions in a uniformly random
// permutation (Fisher-Yates). The input slice is left unmodified.
func (s *ScoringService) Shuffle(questions []entity.Question) []entity.Question {
	shuffled := make([]entity.Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Score tallies the answers per approach and derives the winners: every
// approach tied for the maximum count, in declaration order, truncated
// to at most two. Every approach appears in the score map, a zero count
// included. Deterministic for a given answer sequence.
func (s *ScoringService) Score(answers []entity.TherapyApproach) (*entity.QuizResult, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	scores := make(map[entity.TherapyApproach]int, len(entity.AllApproaches))
	for _, approach := range entity.AllApproaches {
		scores[approach] = 0
	}

	for _, answer := range answers {
		if !answer.IsValid() {
			return nil, errors.New("unknown approach in answers: " + string(answer))
		}
		scores[answer]++
	}

	maxScore := 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	// Ties are broken by declaration order, not by count.
	var winners []entity.TherapyApproach
	for _, approach := range entity.AllApproaches {
		if scores[approach] == maxScore {
			winners = append(winners, approach)
		}
	}
	if len(winners) > maxWinners {
		winners = winners[:maxWinners]
	}

	return &entity.QuizResult{
		Scores:     scores,
		Approaches: winners,
	}, nil
}
