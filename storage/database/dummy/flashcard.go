package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/maneno/core/flashcard"
)

type flashcardRepository struct {
	db *flashcardTable
}

var _ flashcard.Repository = (*flashcardRepository)(nil) // interface compliance check

func NewFlashcardRepository(db *DB) flashcard.Repository {
	return &flashcardRepository{db: db.flashcard}
}

func (repo *flashcardRepository) FilterFlashcards(_ context.Context, filter flashcard.QueryFilter, now time.Time) ([]flashcard.Flashcard, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cards := make([]flashcard.Flashcard, 0, len(repo.db.table))
	for _, fc := range repo.db.table {
		if filter.Category != "" && fc.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && fc.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Due && !fc.IsDue(now) {
			continue
		}
		cards = append(cards, *fc)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].CreatedAt.After(cards[j].CreatedAt) })
	if len(cards) > filter.Limit {
		cards = cards[:filter.Limit]
	}
	return cards, nil
}

func (repo *flashcardRepository) CreateFlashcard(_ context.Context, fc flashcard.Flashcard) (flashcard.Flashcard, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	fc.ID = uuid.New().String()
	repo.db.table[fc.ID] = &fc
	return fc, nil
}
