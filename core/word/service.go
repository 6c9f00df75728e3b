package word

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var ErrNotFound = errors.New("daily word not found")

const defaultLimit = 30

type (
	Repository interface {
		GetDailyWordByDate(ctx context.Context, date time.Time) (DailyWord, error)
		// QueryRecentDailyWords returns word pairs ordered by date, most recent first.
		QueryRecentDailyWords(ctx context.Context, limit int) ([]DailyWord, error)
		// UpsertDailyWord creates the word pair for its date or updates it in place.
		UpsertDailyWord(ctx context.Context, dw DailyWord) (DailyWord, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByDate returns the word pair of the given calendar date (time of day
// is ignored); ErrNotFound when no pair is stored for that date.
func (svc *Service) GetByDate(ctx context.Context, date time.Time) (DailyWord, error) {
	return svc.repo.GetDailyWordByDate(ctx, date)
}

func (svc *Service) Recent(ctx context.Context, limit int) ([]DailyWord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return svc.repo.QueryRecentDailyWords(ctx, limit)
}

func (svc *Service) Upsert(ctx context.Context, nw NewDailyWord) (DailyWord, error) {
	date, err := time.ParseInLocation(dateLayout, nw.Date, time.UTC)
	if err != nil {
		return DailyWord{}, errors.Wrap(err, "parsing date")
	}

	now := time.Now().UTC()
	dw := DailyWord{
		Date:       date,
		Word1:      nw.Word1,
		Meaning1:   nw.Meaning1,
		Example1:   null.NewString(nw.Example1, nw.Example1 != ""),
		Word2:      nw.Word2,
		Meaning2:   nw.Meaning2,
		Example2:   null.NewString(nw.Example2, nw.Example2 != ""),
		Difficulty: nw.Difficulty,
		Category:   null.NewString(nw.Category, nw.Category != ""),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if dw.Difficulty == "" {
		dw.Difficulty = DifficultyMedium
	}
	return svc.repo.UpsertDailyWord(ctx, dw)
}
