package word

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

const dateLayout = "2006-01-02"

// Difficulty levels shared by all content entities.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DailyWord is a pair of words of the day, unique by calendar date.
// The date acts as a natural external key: posting for an existing date
// updates the pair in place.
type DailyWord struct {
	ID         string      `json:"id" db:"id"`
	Date       time.Time   `json:"date" db:"date"`
	Word1      string      `json:"word1" db:"word1"`
	Meaning1   string      `json:"meaning1,omitempty" db:"meaning1"` // omitted from list queries
	Example1   null.String `json:"example1" db:"example1"`
	Word2      string      `json:"word2" db:"word2"`
	Meaning2   string      `json:"meaning2,omitempty" db:"meaning2"` // omitted from list queries
	Example2   null.String `json:"example2" db:"example2"`
	Difficulty string      `json:"difficulty" db:"difficulty"`
	Category   null.String `json:"category" db:"category"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"` // UTC
}

// NewDailyWord contains information needed to create or update the word
// pair of a given date.
type NewDailyWord struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Word1      string `json:"word1" validate:"required"`
	Meaning1   string `json:"meaning1" validate:"required"`
	Example1   string `json:"example1"`
	Word2      string `json:"word2" validate:"required"`
	Meaning2   string `json:"meaning2" validate:"required"`
	Example2   string `json:"example2"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Category   string `json:"category"`
}

func (nw *NewDailyWord) Validate() error {
	nw.Date = core.CleanString(nw.Date)
	nw.Word1 = core.CleanString(nw.Word1)
	nw.Meaning1 = core.CleanString(nw.Meaning1)
	nw.Word2 = core.CleanString(nw.Word2)
	nw.Meaning2 = core.CleanString(nw.Meaning2)
	nw.Difficulty = core.CleanString(nw.Difficulty, true /* lower */)
	nw.Category = core.CleanString(nw.Category, true /* lower */)
	return core.Validate.Struct(nw)
}
