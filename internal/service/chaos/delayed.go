package chaos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/eventlog"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// SendDelayed creates each event with metadata.delayedUntil = now + delay,
// sequentially, pausing between creations to model staggered arrival.
// The events stay invisible to due-event polling until the delay expires.
// Cancelling the context stops the batch between creations; events already
// created stay created.
func (s *Service) SendDelayed(ctx context.Context, input SendDelayedInput) ([]domain.Event, error) {
	if !ctxutil.IsStaff(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	delayedUntil := time.Now().UTC().Add(time.Duration(input.DelayMs) * time.Millisecond)

	created := make([]domain.Event, 0, len(input.Events))
	for i, draft := range input.Events {
		if i > 0 {
			if err := pause(ctx, s.cfg.Stagger); err != nil {
				return created, fmt.Errorf("delayed batch interrupted: %w", err)
			}
		}

		ev, _, err := s.events.CreateEvent(ctx, eventlog.CreateEventInput{
			ID:       draft.ID,
			TeamID:   input.TeamID,
			Type:     draft.Type,
			Payload:  draft.Payload,
			Metadata: domain.EventMetadata{DelayedUntil: &delayedUntil},
		})
		if err != nil {
			return created, fmt.Errorf("create delayed event: %w", err)
		}
		created = append(created, ev)
	}

	s.log.InfoContext(ctx, "delayed batch sent",
		slog.String("team_id", input.TeamID.String()),
		slog.Int("count", len(created)),
		slog.Int("delay_ms", input.DelayMs),
	)

	return created, nil
}
