package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core/progress"
)

type progressRepository struct {
	db *sqlx.DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *sqlx.DB) *progressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) GetProgress(ctx context.Context, userID string) (progress.Progress, error) {
	var prog progress.Progress
	err := repo.db.GetContext(ctx, &prog, "SELECT * FROM user_progress WHERE user_id = $1", userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return progress.Progress{}, progress.ErrNotFound
		}
		return progress.Progress{}, errors.Wrap(err, "getting user progress")
	}
	return prog, nil
}

func (repo *progressRepository) CreateProgress(ctx context.Context, prog progress.Progress) (progress.Progress, error) {
	prog.ID = uuid.New().String()
	now := time.Now().UTC()
	if prog.CreatedAt.IsZero() {
		prog.CreatedAt = now
	}
	if prog.LastActive.IsZero() {
		prog.LastActive = now
	}
	prog.UpdatedAt = prog.CreatedAt

	query := `
		INSERT INTO user_progress (
			id, user_id, streak, total_words, total_blogs_read, total_quizzes_taken,
			total_quizzes_correct, level, points, daily_goal, notifications_enabled,
			last_active, created_at, updated_at
		) VALUES (
			:id, :user_id, :streak, :total_words, :total_blogs_read, :total_quizzes_taken,
			:total_quizzes_correct, :level, :points, :daily_goal, :notifications_enabled,
			:last_active, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, prog); err != nil {
		return progress.Progress{}, errors.Wrap(err, "creating user progress")
	}
	return prog, nil
}

// ApplyActivity relies on the store's per-row upsert atomicity: the lazy
// create and the counter/points increments happen in a single statement so
// concurrent reports for one learner serialize on the user_id conflict.
func (repo *progressRepository) ApplyActivity(
	ctx context.Context,
	userID, activityType string,
	points int,
	now time.Time,
) (progress.Progress, error) {
	var query string
	if col, ok := progress.CounterColumn(activityType); ok {
		// col comes from a fixed map; it is safe to inline.
		query = fmt.Sprintf(`
			INSERT INTO user_progress (id, user_id, %[1]s, points, last_active, created_at, updated_at)
			VALUES ($1, $2, 1, $3, $4, $4, $4)
			ON CONFLICT (user_id) DO UPDATE SET
				%[1]s = user_progress.%[1]s + 1,
				points = user_progress.points + $3,
				last_active = $4,
				updated_at = $4
			RETURNING *`, col)
	} else {
		// unrecognized activity type: no counter is bumped but points are still credited
		query = `
			INSERT INTO user_progress (id, user_id, points, last_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4, $4)
			ON CONFLICT (user_id) DO UPDATE SET
				points = user_progress.points + $3,
				last_active = $4,
				updated_at = $4
			RETURNING *`
	}

	var prog progress.Progress
	err := repo.db.GetContext(ctx, &prog, query, uuid.New().String(), userID, points, now)
	if err != nil {
		return progress.Progress{}, errors.Wrap(err, "applying activity")
	}
	return prog, nil
}

func (repo *progressRepository) CreateActivity(ctx context.Context, act progress.Activity) (progress.Activity, error) {
	act.ID = uuid.New().String()
	if act.CreatedAt.IsZero() {
		act.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO activities (id, user_id, type, content, points, created_at)
		VALUES (:id, :user_id, :type, :content, :points, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, act); err != nil {
		return progress.Activity{}, errors.Wrap(err, "creating activity")
	}
	return act, nil
}
