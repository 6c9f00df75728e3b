package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
)

var ErrNotFound = errors.New("progress not found")

type (
	Repository interface {
		GetProgress(ctx context.Context, userID string) (Progress, error)
		CreateProgress(ctx context.Context, prog Progress) (Progress, error)
		// ApplyActivity lazily creates the learner's Progress row and applies
		// the counter/points increments for the given activity type as a
		// single atomic store operation (create-and-increment is one step).
		ApplyActivity(ctx context.Context, userID, activityType string, points int, now time.Time) (Progress, error)
		CreateActivity(ctx context.Context, act Activity) (Activity, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ReportedActivity is a learner action reported by the frontend.
// Points are credited as reported, negative values included.
type ReportedActivity struct {
	UserID  string      `json:"userId" validate:"required"`
	Type    string      `json:"activityType" validate:"required"`
	Content interface{} `json:"content"`
	Points  int         `json:"points"`
}

func (ra *ReportedActivity) Validate() error {
	ra.UserID = core.CleanString(ra.UserID)
	ra.Type = core.CleanString(ra.Type)
	return core.Validate.Struct(ra)
}

// GetOrCreate returns the learner's Progress, creating a fresh record if
// none exists yet.
func (svc *Service) GetOrCreate(ctx context.Context, userID string) (Progress, error) {
	userID = core.CleanString(userID)
	if userID == "" {
		return Progress{}, core.NewValidationError(
			errors.New("user id is required"),
			core.FieldError{Field: "userId", Error: "this field is required"},
		)
	}

	prog, err := svc.repo.GetProgress(ctx, userID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			prog, err = svc.repo.CreateProgress(ctx, NewProgress(userID))
			if err != nil {
				return Progress{}, errors.Wrap(err, "creating progress")
			}
			return prog, nil
		}
		return Progress{}, errors.Wrap(err, "getting progress")
	}
	return prog, nil
}

// RecordActivity applies a reported activity to the learner's Progress:
// the matching counter is bumped by 1, points are credited and LastActive
// is refreshed; the row is created on the fly for first-time learners.
// One Activity entry is appended to the log with the same fields.
// Returns the post-update Progress snapshot.
//
// Retrying a failed report is safe only by convention: the operation is
// not idempotent and duplicate reports double-count.
func (svc *Service) RecordActivity(ctx context.Context, ra ReportedActivity) (Progress, error) {
	if err := ra.Validate(); err != nil {
		return Progress{}, err
	}
	now := time.Now().UTC()

	prog, err := svc.repo.ApplyActivity(ctx, ra.UserID, ra.Type, ra.Points, now)
	if err != nil {
		return Progress{}, errors.Wrap(err, "applying activity")
	}

	content := ra.Content
	if content == nil {
		content = map[string]interface{}{}
	}
	data, err := json.Marshal(content)
	if err != nil {
		return Progress{}, errors.Wrap(err, "encoding activity content")
	}
	act := Activity{
		UserID:    ra.UserID,
		Type:      ra.Type,
		Content:   string(data),
		Points:    ra.Points,
		CreatedAt: now,
	}
	if _, err = svc.repo.CreateActivity(ctx, act); err != nil {
		// the counter update and the log append are one logical unit but only
		// per-statement atomicity is available; this two-write gap is a known
		// weak point.
		return Progress{}, errors.Wrap(err, "logging activity")
	}
	return prog, nil
}
