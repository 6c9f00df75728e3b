package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trezcool/maneno/core/quiz"
)

type quizRepository struct {
	db *quizTable
}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *DB) quiz.Repository {
	return &quizRepository{db: db.quiz}
}

func (repo *quizRepository) FilterQuizzes(_ context.Context, filter quiz.QueryFilter) ([]quiz.Quiz, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	quizzes := make([]quiz.Quiz, 0, len(repo.db.table))
	for _, qz := range repo.db.table {
		if filter.Category != "" && qz.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && qz.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Type != "" && qz.Type != filter.Type {
			continue
		}
		quizzes = append(quizzes, *qz)
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].CreatedAt.After(quizzes[j].CreatedAt) })
	if len(quizzes) > filter.Limit {
		quizzes = quizzes[:filter.Limit]
	}
	return quizzes, nil
}

func (repo *quizRepository) CreateQuiz(_ context.Context, qz quiz.Quiz) (quiz.Quiz, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	qz.ID = uuid.New().String()
	repo.db.table[qz.ID] = &qz
	return qz, nil
}
