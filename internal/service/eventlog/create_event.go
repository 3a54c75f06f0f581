package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

// CreateEvent appends an event to the log. Creation is idempotent on the
// caller-supplied id: retrying with the same id returns the stored event
// unchanged with created=false and writes nothing.
//
// A newly created event gets an audit log line and, when a notification
// sink is configured, a fire-and-forget delivery of its JSON.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (domain.Event, bool, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return domain.Event{}, false, err
	}

	if err := input.Validate(); err != nil {
		return domain.Event{}, false, err
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	ev := domain.Event{
		ID:        id,
		TeamID:    teamID,
		Type:      input.Type,
		Payload:   input.Payload,
		Metadata:  input.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	stored, created, err := s.events.Create(ctx, ev)
	if err != nil {
		return domain.Event{}, false, fmt.Errorf("create event: %w", err)
	}

	if !created {
		s.log.DebugContext(ctx, "duplicate event creation ignored",
			slog.String("event_id", stored.ID.String()),
			slog.String("type", stored.Type.String()),
		)
		return stored, false, nil
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", stored.ID.String()),
		slog.String("team_id", stored.TeamID.String()),
		slog.String("type", stored.Type.String()),
		slog.Bool("known_type", stored.Type.IsKnown()),
		slog.Bool("delayed", stored.Metadata.DelayedUntil != nil),
	)

	if s.notify != nil {
		go s.deliver(stored)
	}

	return stored, true, nil
}

// deliver pushes the event to the notification sink. Runs detached from
// the request; a failed delivery never affects the stored event.
func (s *Service) deliver(ev domain.Event) {
	if err := s.notify.Notify(context.Background(), ev); err != nil {
		s.log.Warn("event notification failed",
			slog.String("event_id", ev.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
