package eventlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/adapter/postgres/event"
	"github.com/marketstage/backend/internal/domain"
)

// GetEvents returns a team's events, most recent first. The limit falls
// back to the configured default when omitted and is capped at the
// configured maximum; the result is never unbounded.
func (s *Service) GetEvents(ctx context.Context, input GetEventsInput) ([]domain.Event, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultQueryLimit
	}
	if limit > s.cfg.MaxQueryLimit {
		limit = s.cfg.MaxQueryLimit
	}

	events, err := s.events.List(ctx, teamID, event.Filter{
		Type:  input.Type,
		Since: input.Since,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEventByID returns one event. Team callers only see their own team's
// events; someone else's event reads as not found rather than leaking its
// existence.
func (s *Service) GetEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if _, ok := resolveCaller(ctx); !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !visibleTo(ctx, ev) {
		return domain.Event{}, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return ev, nil
}
