// Package chaos implements the staff-facing chaos injection operations:
// duplicate submission, shuffled out-of-order creation, and delayed
// visibility. Everything goes through the ordinary event log primitives,
// so chaos events inherit the log's validation and idempotency rules;
// there is no separate storage path.
package chaos

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/eventlog"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventLog interface {
	CreateEvent(ctx context.Context, input eventlog.CreateEventInput) (domain.Event, bool, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the chaos injection business logic.
type Service struct {
	events eventLog
	log    *slog.Logger
	cfg    config.ChaosConfig
}

// NewService creates a new chaos service.
func NewService(log *slog.Logger, events eventLog, cfg config.ChaosConfig) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "chaos"),
		cfg:    cfg,
	}
}

// pause waits for d or until the context is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
