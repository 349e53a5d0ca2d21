package models

import (
	"errors"
	"strings"
	"time"
)

type Option struct {
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"is_correct" json:"isCorrect"`
}

type Question struct {
	ID      string   `bson:"id" json:"id"`
	Text    string   `bson:"text" json:"text"`
	Options []Option `bson:"options" json:"options"`
}

// CorrectOptionIndex returns the position of the first option marked
// correct, or -1 when none is. The data model tolerates several correct
// flags; scoring only ever honors the first.
func (q *Question) CorrectOptionIndex() int {
	for i, opt := range q.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

type Quiz struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	CreatedBy   string     `bson:"created_by" json:"createdBy"`
	Questions   []Question `bson:"questions" json:"questions"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Validate enforces the invariants that make a quiz gradeable. A quiz that
// passes here can never make the scorer divide by zero or leave a question
// without a correct option.
func (z *Quiz) Validate() error {
	if strings.TrimSpace(z.Title) == "" {
		return errors.New("quiz title is required")
	}
	if strings.TrimSpace(z.Description) == "" {
		return errors.New("quiz description is required")
	}
	if len(z.Questions) == 0 {
		return errors.New("quiz must contain at least one question")
	}
	for _, q := range z.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return errors.New("question text is required")
		}
		if len(q.Options) == 0 {
			return errors.New("question must contain at least one option")
		}
		if q.CorrectOptionIndex() < 0 {
			return errors.New("question must have an option marked correct")
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				return errors.New("option text is required")
			}
		}
	}
	return nil
}
