package event

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
		// FilterEvents returns events ordered by start date, earliest first.
		// QueryFilter.Upcoming matches events with StartDate >= now.
		FilterEvents(ctx context.Context, filter QueryFilter, now time.Time) ([]Event, error)
		CreateEvent(ctx context.Context, evt Event) (Event, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Event, error) {
	filter.Clean()
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	events, err := svc.repo.FilterEvents(ctx, filter, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "filtering events")
	}
	return events, nil
}

func (svc *Service) Create(ctx context.Context, ne NewEvent) (Event, error) {
	now := time.Now().UTC()
	evt := Event{
		Title:       ne.Title,
		Description: ne.Description,
		StartDate:   ne.StartDate.UTC(),
		Type:        ne.Type,
		IsOnline:    true,
		Tags:        core.StringSlice(ne.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ne.EndDate != nil {
		evt.EndDate = null.TimeFrom(ne.EndDate.UTC())
	}
	if ne.IsOnline != nil {
		evt.IsOnline = *ne.IsOnline
	}
	if ne.MaxParticipants != nil {
		evt.MaxParticipants = null.IntFrom(*ne.MaxParticipants)
	}
	if evt.Type == "" {
		evt.Type = defaultType
	}
	if evt.Tags == nil {
		evt.Tags = core.StringSlice{}
	}
	return svc.repo.CreateEvent(ctx, evt)
}
