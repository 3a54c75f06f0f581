package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marketstage/backend/internal/domain"
)

// ReplayEvent creates a new event (fresh id) carrying the same team, type,
// and payload as an existing one, tagged with metadata.replayOf and, when
// given, a delayed visibility time. The replay goes through the ordinary
// creation path and is subject to the same validation and idempotency
// rules. Fails with domain.ErrNotFound if the source does not exist.
func (s *Service) ReplayEvent(ctx context.Context, input ReplayEventInput) (domain.Event, error) {
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	source, err := s.GetEventByID(ctx, input.EventID)
	if err != nil {
		return domain.Event{}, err
	}

	sourceID := source.ID
	replay, _, err := s.CreateEvent(ctx, CreateEventInput{
		TeamID:  source.TeamID,
		Type:    source.Type,
		Payload: source.Payload,
		Metadata: domain.EventMetadata{
			ReplayOf:     &sourceID,
			DelayedUntil: input.DelayUntil,
		},
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("replay event %s: %w", sourceID, err)
	}

	s.log.InfoContext(ctx, "event replayed",
		slog.String("source_id", sourceID.String()),
		slog.String("replay_id", replay.ID.String()),
		slog.Bool("delayed", input.DelayUntil != nil),
	)

	return replay, nil
}
