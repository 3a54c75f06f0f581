package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

// MarkProcessed stamps processedAt on an event if it is still unset.
// Idempotent: marking an already-processed event is a no-op, and multiple
// consumers may mark the same event without conflict. Fails with
// domain.ErrNotFound if the event does not exist.
func (s *Service) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}

	// The visibility check doubles as the existence check.
	if _, err := s.GetEventByID(ctx, id); err != nil {
		return err
	}

	if err := s.events.MarkProcessed(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}

	s.log.InfoContext(ctx, "event marked processed",
		slog.String("event_id", id.String()),
	)
	return nil
}
