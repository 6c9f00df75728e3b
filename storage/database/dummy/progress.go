package dummydb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/maneno/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) progress.Repository {
	return &progressRepository{db: db.progress}
}

func (repo *progressRepository) GetProgress(_ context.Context, userID string) (progress.Progress, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if prog, ok := repo.db.table[userID]; ok {
		return *prog, nil
	}
	return progress.Progress{}, progress.ErrNotFound
}

func (repo *progressRepository) CreateProgress(_ context.Context, prog progress.Progress) (progress.Progress, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if existing, ok := repo.db.table[prog.UserID]; ok {
		return *existing, nil
	}
	prog.ID = uuid.New().String()
	now := time.Now().UTC()
	prog.CreatedAt = now
	prog.UpdatedAt = now
	prog.LastActive = now
	repo.db.table[prog.UserID] = &prog
	return prog, nil
}

func (repo *progressRepository) ApplyActivity(_ context.Context, userID, activityType string, points int, now time.Time) (progress.Progress, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	prog, ok := repo.db.table[userID]
	if !ok {
		fresh := progress.NewProgress(userID)
		fresh.ID = uuid.New().String()
		fresh.CreatedAt = now
		prog = &fresh
		repo.db.table[userID] = prog
	}

	if col, ok := progress.CounterColumn(activityType); ok {
		switch col {
		case "total_words":
			prog.TotalWords++
		case "total_blogs_read":
			prog.TotalBlogsRead++
		case "total_quizzes_taken":
			prog.TotalQuizzesTaken++
		case "total_quizzes_correct":
			prog.TotalQuizzesCorrect++
		}
	}
	prog.Points += points
	prog.LastActive = now
	prog.UpdatedAt = now
	return *prog, nil
}

func (repo *progressRepository) CreateActivity(_ context.Context, act progress.Activity) (progress.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	act.ID = uuid.New().String()
	repo.db.activities = append(repo.db.activities, act)
	return act, nil
}

// Activities returns a copy of the activity log, oldest first.
// It is a test helper with no production counterpart.
func (db *DB) Activities() []progress.Activity {
	db.progress.RLock()
	defer db.progress.RUnlock()

	acts := make([]progress.Activity, len(db.progress.activities))
	copy(acts, db.progress.activities)
	return acts
}
