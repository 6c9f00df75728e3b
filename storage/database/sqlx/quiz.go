package sqlxrepos

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/quiz"
)

var quizOrdering = core.DBOrdering{Field: "created_at"} // newest first

type quizRepository struct {
	db *sqlx.DB
}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *sqlx.DB) *quizRepository {
	return &quizRepository{db: db}
}

func (repo *quizRepository) FilterQuizzes(ctx context.Context, filter quiz.QueryFilter) ([]quiz.Quiz, error) {
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
	if filter.Type != "" {
		addCond("type = $%d", filter.Type)
	}

	query := "SELECT * FROM quizzes"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d", quizOrdering, len(args))

	quizzes := make([]quiz.Quiz, 0, filter.Limit)
	if err := repo.db.SelectContext(ctx, &quizzes, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying quizzes")
	}
	return quizzes, nil
}

func (repo *quizRepository) CreateQuiz(ctx context.Context, qz quiz.Quiz) (quiz.Quiz, error) {
	qz.ID = uuid.New().String()

	query := `
		INSERT INTO quizzes (
			id, question, type, options, correct_answer, explanation,
			difficulty, category, points, created_at, updated_at
		) VALUES (
			:id, :question, :type, :options, :correct_answer, :explanation,
			:difficulty, :category, :points, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, qz); err != nil {
		return quiz.Quiz{}, errors.Wrap(err, "inserting quiz")
	}
	return qz, nil
}
