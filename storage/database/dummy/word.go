package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core/word"
)

const dateKeyLayout = "2006-01-02"

type wordRepository struct {
	db *wordTable
}

var _ word.Repository = (*wordRepository)(nil) // interface compliance check

func NewWordRepository(db *DB) word.Repository {
	return &wordRepository{db: db.word}
}

func (repo *wordRepository) GetDailyWordByDate(_ context.Context, date time.Time) (word.DailyWord, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if dw, ok := repo.db.table[date.Format(dateKeyLayout)]; ok {
		return *dw, nil
	}
	return word.DailyWord{}, word.ErrNotFound
}

func (repo *wordRepository) QueryRecentDailyWords(_ context.Context, limit int) ([]word.DailyWord, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	words := make([]word.DailyWord, 0, len(repo.db.table))
	for _, dw := range repo.db.table {
		summary := *dw
		// summary projection
		summary.Meaning1 = ""
		summary.Example1 = null.String{}
		summary.Meaning2 = ""
		summary.Example2 = null.String{}
		words = append(words, summary)
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Date.After(words[j].Date) })
	if len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

func (repo *wordRepository) UpsertDailyWord(_ context.Context, dw word.DailyWord) (word.DailyWord, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := dw.Date.Format(dateKeyLayout)
	if orig, ok := repo.db.table[key]; ok {
		dw.ID = orig.ID
		dw.CreatedAt = orig.CreatedAt
	} else {
		dw.ID = uuid.New().String()
	}
	repo.db.table[key] = &dw
	return dw, nil
}
