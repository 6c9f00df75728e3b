package flashcard

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

const defaultCategory = "vocabulary"

// Flashcard is a front/back study card. NextReview only drives a boolean
// due/not-due filter; there is no review-interval algorithm.
type Flashcard struct {
	ID         string      `json:"id" db:"id"`
	Front      string      `json:"front" db:"front"`
	Back       string      `json:"back" db:"back"`
	Category   string      `json:"category" db:"category"`
	Difficulty string      `json:"difficulty" db:"difficulty"`
	ImageURL   null.String `json:"imageUrl" db:"image_url"`
	AudioURL   null.String `json:"audioUrl" db:"audio_url"`
	NextReview time.Time   `json:"nextReview" db:"next_review"` // UTC
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`   // UTC
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`   // UTC
}

// IsDue reports whether the card is due for review at time t.
func (fc *Flashcard) IsDue(t time.Time) bool {
	return !fc.NextReview.After(t)
}

// NewFlashcard contains information needed to create a new Flashcard.
type NewFlashcard struct {
	Front      string `json:"front" validate:"required"`
	Back       string `json:"back" validate:"required"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
	AudioURL   string `json:"audioUrl" validate:"omitempty,url"`
}

func (nf *NewFlashcard) Validate() error {
	nf.Front = core.CleanString(nf.Front)
	nf.Back = core.CleanString(nf.Back)
	nf.Category = core.CleanString(nf.Category, true /* lower */)
	nf.Difficulty = core.CleanString(nf.Difficulty, true /* lower */)
	return core.Validate.Struct(nf)
}

// QueryFilter applies an AND operation on its non-zero fields.
type QueryFilter struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
	Due        bool   `query:"due"` // only cards whose NextReview has passed
	Limit      int    `query:"limit"`
}

func (qf *QueryFilter) Clean() {
	qf.Category = core.CleanString(qf.Category, true /* lower */)
	qf.Difficulty = core.CleanString(qf.Difficulty, true /* lower */)
}
