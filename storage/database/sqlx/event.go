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
	"github.com/trezcool/maneno/core/event"
)

var eventOrdering = core.DBOrdering{Field: "start_date", Ascending: true} // soonest first

type eventRepository struct {
	db *sqlx.DB
}

var _ event.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *sqlx.DB) *eventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) FilterEvents(ctx context.Context, filter event.QueryFilter, now time.Time) ([]event.Event, error) {
	var (
		conds []string
		args  []interface{}
	)
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != "" {
		addCond("type = $%d", filter.Type)
	}
	if filter.Upcoming {
		addCond("start_date >= $%d", now)
	}

	query := "SELECT * FROM events"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d", eventOrdering, len(args))

	events := make([]event.Event, 0, filter.Limit)
	if err := repo.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying events")
	}
	return events, nil
}

func (repo *eventRepository) CreateEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	evt.ID = uuid.New().String()

	query := `
		INSERT INTO events (
			id, title, description, start_date, end_date, type, is_online,
			max_participants, tags, created_at, updated_at
		) VALUES (
			:id, :title, :description, :start_date, :end_date, :type, :is_online,
			:max_participants, :tags, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, evt); err != nil {
		return event.Event{}, errors.Wrap(err, "inserting event")
	}
	return evt, nil
}
