package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidQuestionBank is returned when the quiz question bank does
// not cover every approach exactly once per question.
var ErrInvalidQuestionBank = errors.New("invalid question bank")

// Question is one quiz question with its fixed set of options.
type Question struct {
	ID       uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Prompt   string           `gorm:"type:text;not null" json:"prompt"`
	OrderNum int              `gorm:"not null;uniqueIndex" json:"order_num"`
	Options  []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionOption is one selectable answer, tagged with exactly one
// therapy approach.
type QuestionOption struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint            `gorm:"not null;index" json:"question_id"`
	Label      string          `gorm:"type:char(1);not null" json:"label"`
	Prompt     string          `gorm:"type:text;not null" json:"prompt"`
	Approach   TherapyApproach `gorm:"type:varchar(20);not null" json:"approach"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// OptionByID returns the option with the given ID, or nil.
func (q *Question) OptionByID(optionID uint) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}

// ValidateQuestionBank checks the invariant the scoring tally relies on:
// every question offers exactly one option per declared approach, so a
// category count can legitimately reach the question count. Called at
// bootstrap; an invalid bank refuses to serve quizzes.
func ValidateQuestionBank(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestionBank)
	}

	for _, q := range questions {
		if len(q.Options) != len(AllApproaches) {
			return fmt.Errorf("%w: question %d has %d options, want %d",
				ErrInvalidQuestionBank, q.ID, len(q.Options), len(AllApproaches))
		}

		seen := make(map[TherapyApproach]bool, len(AllApproaches))
		for _, opt := range q.Options {
			if !opt.Approach.IsValid() {
				return fmt.Errorf("%w: question %d option %q has unknown approach %q",
					ErrInvalidQuestionBank, q.ID, opt.Label, opt.Approach)
			}
			if seen[opt.Approach] {
				return fmt.Errorf("%w: question %d repeats approach %q",
					ErrInvalidQuestionBank, q.ID, opt.Approach)
			}
			seen[opt.Approach] = true
		}
	}

	return nil
}
