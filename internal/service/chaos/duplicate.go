package chaos

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// SendDuplicate re-fetches an existing event and returns it verbatim.
// Nothing new is stored: the point is to hand consumers the same event
// twice and prove that idempotent handling holds. Fails with
// domain.ErrNotFound if the event does not exist.
func (s *Service) SendDuplicate(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	if !ctxutil.IsStaff(ctx) {
		return domain.Event{}, domain.ErrForbidden
	}
	if eventID == uuid.Nil {
		return domain.Event{}, domain.NewValidationError("event_id", "required")
	}

	ev, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("duplicate event %s: %w", eventID, err)
	}

	s.log.InfoContext(ctx, "duplicate event sent",
		slog.String("event_id", ev.ID.String()),
		slog.String("team_id", ev.TeamID.String()),
		slog.String("type", ev.Type.String()),
	)

	return ev, nil
}
