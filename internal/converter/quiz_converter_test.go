package converter

import (
	"encoding/json"
	"strings"
	"testing"

	"encontrapsi/internal/domain/entity"
)

func TestQuestionToResponseHidesApproaches(t *testing.T) {
	question := &entity.Question{
		ID:     1,
		Prompt: "O que você busca na terapia?",
		Options: []entity.QuestionOption{
			{ID: 1, Label: "a", Prompt: "Entender meu passado", Approach: entity.ApproachPsicanalise},
			{ID: 2, Label: "b", Prompt: "Melhorar minhas relações", Approach: entity.ApproachSistemica},
		},
	}

	resp := QuestionToResponse(question)
	if resp == nil {
		t.Fatal("QuestionToResponse returned nil")
	}
	if len(resp.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(resp.Options))
	}

	// The approach tag must never reach the client.
	payload, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, approach := range entity.AllApproaches {
		if strings.Contains(string(payload), string(approach)) {
			t.Errorf("serialized question leaks approach %q: %s", approach, payload)
		}
	}
}

func TestQuestionToResponseNil(t *testing.T) {
	if QuestionToResponse(nil) != nil {
		t.Error("QuestionToResponse(nil) should return nil")
	}
}

func TestQuizResultToResponseExpandsCatalog(t *testing.T) {
	result := &entity.QuizResult{
		Scores: map[entity.TherapyApproach]int{
			entity.ApproachPsicanalise: 4,
			entity.ApproachSistemica:   3,
		},
		Approaches: []entity.TherapyApproach{entity.ApproachPsicanalise, entity.ApproachSistemica},
	}

	resp := QuizResultToResponse(result)
	if resp == nil {
		t.Fatal("QuizResultToResponse returned nil")
	}

	if resp.Scores["psicanalise"] != 4 || resp.Scores["sistemica"] != 3 {
		t.Errorf("Scores = %v", resp.Scores)
	}
	if len(resp.Approaches) != 2 {
		t.Fatalf("got %d approaches, want 2", len(resp.Approaches))
	}
	if resp.Approaches[0].Name != "Psicanálise" {
		t.Errorf("first approach name = %q, want catalog display name", resp.Approaches[0].Name)
	}
	if resp.Approaches[0].Description == "" {
		t.Error("approach description is empty")
	}
}
