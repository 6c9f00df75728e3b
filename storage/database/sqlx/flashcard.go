package sqlxrepos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/flashcard"
)

var flashcardOrdering = core.DBOrdering{Field: "created_at"} // newest first

type flashcardRepository struct {
	db *sqlx.DB
}

var _ flashcard.Repository = (*flashcardRepository)(nil) // interface compliance check

func NewFlashcardRepository(db *sqlx.DB) *flashcardRepository {
	return &flashcardRepository{db: db}
}

func (repo *flashcardRepository) FilterFlashcards(ctx context.Context, filter flashcard.QueryFilter, now time.Time) ([]flashcard.Flashcard, error) {
	var (
		conds []string
		args  []interface{}
	)
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != "" {
		addCond("category = $%d", filter.Category)
	}
	if filter.Difficulty != "" {
		addCond("difficulty = $%d", filter.Difficulty)
	}
	if filter.Due {
		addCond("next_review <= $%d", now)
	}

	query := "SELECT * FROM flashcards"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d", flashcardOrdering, len(args))

	cards := make([]flashcard.Flashcard, 0, filter.Limit)
	if err := repo.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying flashcards")
	}
	return cards, nil
}

func (repo *flashcardRepository) CreateFlashcard(ctx context.Context, fc flashcard.Flashcard) (flashcard.Flashcard, error) {
	fc.ID = uuid.New().String()

	query := `
		INSERT INTO flashcards (
			id, front, back, category, difficulty, image_url, audio_url,
			next_review, created_at, updated_at
		) VALUES (
			:id, :front, :back, :category, :difficulty, :image_url, :audio_url,
			:next_review, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, fc); err != nil {
		return flashcard.Flashcard{}, errors.Wrap(err, "inserting flashcard")
	}
	return fc, nil
}
