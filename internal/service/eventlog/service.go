// Package eventlog implements the event log business logic: idempotent
// creation, filtered queries, replay, due-event polling, and processed
// marking. The log is append-only; the only post-creation state change is
// the processed stamp.
package eventlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/adapter/postgres/event"
	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventRepo interface {
	Create(ctx context.Context, ev domain.Event) (domain.Event, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	List(ctx context.Context, teamID uuid.UUID, filter event.Filter) ([]domain.Event, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.Event, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// notifier delivers a created event's JSON to an external sink.
// Delivery failures are logged, never propagated.
type notifier interface {
	Notify(ctx context.Context, ev domain.Event) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the event log business logic.
type Service struct {
	events eventRepo
	notify notifier
	log    *slog.Logger
	cfg    config.EventsConfig
}

// NewService creates a new event log service. The notifier may be nil when
// no notification sink is configured.
func NewService(
	log *slog.Logger,
	events eventRepo,
	notify notifier,
	cfg config.EventsConfig,
) *Service {
	return &Service{
		events: events,
		notify: notify,
		log:    log.With("service", "eventlog"),
		cfg:    cfg,
	}
}

// resolveTeamID decides which team's events the caller may touch.
// Team callers act only on their own log; staff callers name the target
// team explicitly.
func resolveTeamID(ctx context.Context, requested uuid.UUID) (uuid.UUID, error) {
	if teamID, ok := ctxutil.TeamIDFromCtx(ctx); ok {
		if requested != uuid.Nil && requested != teamID {
			return uuid.Nil, domain.ErrForbidden
		}
		return teamID, nil
	}
	if ctxutil.IsStaff(ctx) {
		if requested == uuid.Nil {
			return uuid.Nil, domain.NewValidationError("team_id", "required")
		}
		return requested, nil
	}
	return uuid.Nil, domain.ErrUnauthorized
}

// resolveCaller reports whether the context carries a resolved identity
// (team or staff), and the team ID when the caller is a team.
func resolveCaller(ctx context.Context) (uuid.UUID, bool) {
	if teamID, ok := ctxutil.TeamIDFromCtx(ctx); ok {
		return teamID, true
	}
	if ctxutil.IsStaff(ctx) {
		return uuid.Nil, true
	}
	return uuid.Nil, false
}

// visibleTo reports whether the caller may see the given event. Staff see
// everything; team callers only their own team's events.
func visibleTo(ctx context.Context, ev domain.Event) bool {
	if ctxutil.IsStaff(ctx) {
		return true
	}
	teamID, ok := ctxutil.TeamIDFromCtx(ctx)
	return ok && teamID == ev.TeamID
}
