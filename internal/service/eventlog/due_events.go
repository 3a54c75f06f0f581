package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// GetDueEvents returns delayed events whose visibility time has passed and
// which have not been marked processed. There is no scheduler: a delayed
// event becomes actionable only when a consumer polls this operation.
// Team callers see only their own due events; staff see all.
func (s *Service) GetDueEvents(ctx context.Context) ([]domain.Event, error) {
	teamID, ok := resolveCaller(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}

	if ctxutil.IsStaff(ctx) {
		return events, nil
	}

	own := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if ev.TeamID == teamID {
			own = append(own, ev)
		}
	}
	return own, nil
}
