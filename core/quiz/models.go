package quiz

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

// Quiz types.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeFillBlank      = "fill_blank"
)

const (
	defaultCategory = "vocabulary"
	defaultPoints   = 1
)

// Quiz is a single question. Options is empty for non-choice types; it is
// stored as JSON-encoded text and decoded back into the same ordered
// sequence at every read.
type Quiz struct {
	ID            string           `json:"id" db:"id"`
	Question      string           `json:"question" db:"question"`
	Type          string           `json:"type" db:"type"`
	Options       core.StringSlice `json:"options" db:"options"`
	CorrectAnswer string           `json:"correctAnswer" db:"correct_answer"`
	Explanation   null.String      `json:"explanation" db:"explanation"`
	Difficulty    string           `json:"difficulty" db:"difficulty"`
	Category      string           `json:"category" db:"category"`
	Points        int              `json:"points" db:"points"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"` // UTC
}

// NewQuiz contains information needed to create a new Quiz.
// An empty options list is accepted for any type.
type NewQuiz struct {
	Question      string   `json:"question" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=multiple_choice true_false fill_blank"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Category      string   `json:"category"`
	Points        int      `json:"points" validate:"omitempty,min=1"`
}

func (nq *NewQuiz) Validate() error {
	nq.Question = core.CleanString(nq.Question)
	nq.Type = core.CleanString(nq.Type, true /* lower */)
	nq.CorrectAnswer = core.CleanString(nq.CorrectAnswer)
	nq.Difficulty = core.CleanString(nq.Difficulty, true /* lower */)
	nq.Category = core.CleanString(nq.Category, true /* lower */)
	return core.Validate.Struct(nq)
}

// QueryFilter applies an AND operation on its non-zero fields.
type QueryFilter struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
	Type       string `query:"type"`
	Limit      int    `query:"limit"`
}

func (qf *QueryFilter) Clean() {
	qf.Category = core.CleanString(qf.Category, true /* lower */)
	qf.Difficulty = core.CleanString(qf.Difficulty, true /* lower */)
	qf.Type = core.CleanString(qf.Type, true /* lower */)
}
