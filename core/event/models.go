package event

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

const defaultType = "webinar"

// Event is a scheduled learning event (webinar, workshop, ...).
type Event struct {
	ID              string           `json:"id" db:"id"`
	Title           string           `json:"title" db:"title"`
	Description     string           `json:"description" db:"description"`
	StartDate       time.Time        `json:"startDate" db:"start_date"` // UTC
	EndDate         null.Time        `json:"endDate" db:"end_date"`     // UTC
	Type            string           `json:"type" db:"type"`
	IsOnline        bool             `json:"isOnline" db:"is_online"`
	MaxParticipants null.Int         `json:"maxParticipants" db:"max_participants"`
	Tags            core.StringSlice `json:"tags" db:"tags"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"` // UTC
}

// NewEvent contains information needed to create a new Event.
type NewEvent struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	StartDate       time.Time  `json:"startDate" validate:"required"`
	EndDate         *time.Time `json:"endDate"`
	Type            string     `json:"type"`
	IsOnline        *bool      `json:"isOnline"` // defaults to true
	MaxParticipants *int       `json:"maxParticipants" validate:"omitempty,min=1"`
	Tags            []string   `json:"tags"`
}

func (ne *NewEvent) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	ne.Type = core.CleanString(ne.Type, true /* lower */)
	return core.Validate.Struct(ne)
}

// QueryFilter applies an AND operation on its non-zero fields.
type QueryFilter struct {
	Type     string `query:"type"`
	Upcoming bool   `query:"upcoming"` // only events starting from now on
	Limit    int    `query:"limit"`
}

func (qf *QueryFilter) Clean() {
	qf.Type = core.CleanString(qf.Type, true /* lower */)
}
