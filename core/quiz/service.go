package quiz

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/maneno/core"
)

const defaultLimit = 10

type (
	Repository interface {
		// FilterQuizzes returns quizzes ordered by creation time, most recent first.
		FilterQuizzes(ctx context.Context, filter QueryFilter) ([]Quiz, error)
		CreateQuiz(ctx context.Context, qz Quiz) (Quiz, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Quiz, error) {
	filter.Clean()
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	quizzes, err := svc.repo.FilterQuizzes(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "filtering quizzes")
	}
	return quizzes, nil
}

func (svc *Service) Create(ctx context.Context, nq NewQuiz) (Quiz, error) {
	now := time.Now().UTC()
	qz := Quiz{
		Question:      nq.Question,
		Type:          nq.Type,
		Options:       core.StringSlice(nq.Options),
		CorrectAnswer: nq.CorrectAnswer,
		Explanation:   null.NewString(nq.Explanation, nq.Explanation != ""),
		Difficulty:    nq.Difficulty,
		Category:      nq.Category,
		Points:        nq.Points,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if qz.Options == nil {
		qz.Options = core.StringSlice{}
	}
	if qz.Difficulty == "" {
		qz.Difficulty = "medium"
	}
	if qz.Category == "" {
		qz.Category = defaultCategory
	}
	if qz.Points == 0 {
		qz.Points = defaultPoints
	}
	return svc.repo.CreateQuiz(ctx, qz)
}
