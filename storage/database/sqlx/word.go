package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core/word"
)

type wordRepository struct {
	db *sqlx.DB
}

var _ word.Repository = (*wordRepository)(nil) // interface compliance check

func NewWordRepository(db *sqlx.DB) *wordRepository {
	return &wordRepository{db: db}
}

func (repo *wordRepository) GetDailyWordByDate(ctx context.Context, date time.Time) (word.DailyWord, error) {
	var dw word.DailyWord
	err := repo.db.GetContext(ctx, &dw, "SELECT * FROM daily_words WHERE date = $1::date", date)
	if err != nil {
		if err == sql.ErrNoRows {
			return word.DailyWord{}, word.ErrNotFound
		}
		return word.DailyWord{}, errors.Wrap(err, "getting daily word")
	}
	return dw, nil
}

func (repo *wordRepository) QueryRecentDailyWords(ctx context.Context, limit int) ([]word.DailyWord, error) {
	// summary projection: meanings and examples are omitted from list queries
	query := `
		SELECT id, date, word1, word2, difficulty, category, created_at, updated_at
		FROM daily_words ORDER BY date DESC LIMIT $1`

	words := make([]word.DailyWord, 0, limit)
	if err := repo.db.SelectContext(ctx, &words, query, limit); err != nil {
		return nil, errors.Wrap(err, "querying daily words")
	}
	return words, nil
}

func (repo *wordRepository) UpsertDailyWord(ctx context.Context, dw word.DailyWord) (word.DailyWord, error) {
	dw.ID = uuid.New().String()

	query := `
		INSERT INTO daily_words (
			id, date, word1, meaning1, example1, word2, meaning2, example2,
			difficulty, category, created_at, updated_at
		) VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (date) DO UPDATE SET
			word1 = EXCLUDED.word1,
			meaning1 = EXCLUDED.meaning1,
			example1 = EXCLUDED.example1,
			word2 = EXCLUDED.word2,
			meaning2 = EXCLUDED.meaning2,
			example2 = EXCLUDED.example2,
			difficulty = EXCLUDED.difficulty,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at
		RETURNING *`
	var saved word.DailyWord
	err := repo.db.GetContext(
		ctx, &saved, query,
		dw.ID, dw.Date, dw.Word1, dw.Meaning1, dw.Example1, dw.Word2, dw.Meaning2, dw.Example2,
		dw.Difficulty, dw.Category, dw.UpdatedAt,
	)
	if err != nil {
		return word.DailyWord{}, errors.Wrap(err, "upserting daily word")
	}
	return saved, nil
}
