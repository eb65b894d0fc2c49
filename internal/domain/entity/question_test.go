package entity

import (
	"errors"
	"testing"
)

func validBank(count int) []Question {
	labels := []string{"a", "b", "c", "d", "e", "f"}
	questions := make([]Question, count)
	for i := range questions {
		q := Question{ID: uint(i + 1), OrderNum: i + 1}
		for j, approach := range AllApproaches {
			q.Options = append(q.Options, QuestionOption{
				ID:         uint(i*len(AllApproaches) + j + 1),
				QuestionID: q.ID,
				Label:      labels[j],
				Approach:   approach,
			})
		}
		questions[i] = q
	}
	return questions
}

func TestValidateQuestionBank(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Question) []Question
		wantErr bool
	}{
		{
			name:   "valid bank",
			mutate: func(qs []Question) []Question { return qs },
		},
		{
			name:    "empty bank",
			mutate:  func([]Question) []Question { return nil },
			wantErr: true,
		},
		{
			name: "missing option",
			mutate: func(qs []Question) []Question {
				qs[2].Options = qs[2].Options[:5]
				return qs
			},
			wantErr: true,
		},
		{
			name: "duplicate approach",
			mutate: func(qs []Question) []Question {
				qs[0].Options[1].Approach = qs[0].Options[0].Approach
				return qs
			},
			wantErr: true,
		},
		{
			name: "unknown approach",
			mutate: func(qs []Question) []Question {
				qs[4].Options[3].Approach = "hipnose"
				return qs
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuestionBank(tc.mutate(validBank(7)))
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidQuestionBank) {
					t.Errorf("error = %v, want ErrInvalidQuestionBank", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOptionByID(t *testing.T) {
	q := validBank(1)[0]

	opt := q.OptionByID(3)
	if opt == nil {
		t.Fatal("OptionByID(3) returned nil")
	}
	if opt.Approach != ApproachGestalt {
		t.Errorf("approach = %q, want %q", opt.Approach, ApproachGestalt)
	}

	if q.OptionByID(999) != nil {
		t.Error("OptionByID(999) should return nil")
	}
}
