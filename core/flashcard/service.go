package flashcard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

const defaultLimit = 20

type (
	Repository interface {
		// FilterFlashcards returns cards ordered by creation time, most recent
		// first. QueryFilter.Due matches cards with NextReview <= now.
		FilterFlashcards(ctx context.Context, filter QueryFilter, now time.Time) ([]Flashcard, error)
		CreateFlashcard(ctx context.Context, fc Flashcard) (Flashcard, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Flashcard, error) {
	filter.Clean()
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	cards, err := svc.repo.FilterFlashcards(ctx, filter, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "filtering flashcards")
	}
	return cards, nil
}

func (svc *Service) Create(ctx context.Context, nf NewFlashcard) (Flashcard, error) {
	now := time.Now().UTC()
	fc := Flashcard{
		Front:      nf.Front,
		Back:       nf.Back,
		Category:   nf.Category,
		Difficulty: nf.Difficulty,
		ImageURL:   null.NewString(nf.ImageURL, nf.ImageURL != ""),
		AudioURL:   null.NewString(nf.AudioURL, nf.AudioURL != ""),
		NextReview: now, // due immediately
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if fc.Category == "" {
		fc.Category = defaultCategory
	}
	if fc.Difficulty == "" {
		fc.Difficulty = "medium"
	}
	return svc.repo.CreateFlashcard(ctx, fc)
}
