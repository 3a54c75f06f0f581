package chaos

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/eventlog"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// SendOutOfOrder creates the given events in a randomized order, each
// tagged metadata.outOfOrder = true. Consumers must not assume createdAt
// ordering reflects business causality. Returns the events in creation
// (storage) order, which need not match the input order.
func (s *Service) SendOutOfOrder(ctx context.Context, input SendOutOfOrderInput) ([]domain.Event, error) {
	if !ctxutil.IsStaff(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	shuffled := make([]EventDraft, len(input.Events))
	copy(shuffled, input.Events)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	created := make([]domain.Event, 0, len(shuffled))
	for _, draft := range shuffled {
		ev, _, err := s.events.CreateEvent(ctx, eventlog.CreateEventInput{
			ID:       draft.ID,
			TeamID:   input.TeamID,
			Type:     draft.Type,
			Payload:  draft.Payload,
			Metadata: domain.EventMetadata{OutOfOrder: true},
		})
		if err != nil {
			return created, fmt.Errorf("create out-of-order event: %w", err)
		}
		created = append(created, ev)
	}

	s.log.InfoContext(ctx, "out-of-order batch sent",
		slog.String("team_id", input.TeamID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
