// Package event implements the event log repository using PostgreSQL.
// The log is append-only: rows are never updated except to stamp
// processed_at exactly once, and never deleted.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/domain"
)

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = `id, team_id, type, payload, metadata, delayed_until, created_at, processed_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createEventSQL = `
INSERT INTO events (id, team_id, type, payload, metadata, delayed_until, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

// Create inserts a new event. Creation is idempotent on the event id: if a
// row with the same id already exists, the stored event is returned
// unchanged and created is false. The uniqueness constraint carries the
// guarantee, so there is no window between an existence check and the
// insert.
func (r *Repo) Create(ctx context.Context, ev domain.Event) (domain.Event, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metaJSON, err := metadataJSON(ev.Metadata)
	if err != nil {
		return domain.Event{}, false, fmt.Errorf("event %s marshal metadata: %w", ev.ID, err)
	}

	payload := ev.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	tag, err := q.Exec(ctx, createEventSQL,
		ev.ID, ev.TeamID, ev.Type, payload, metaJSON, ev.Metadata.DelayedUntil, ev.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, false, postgres.MapError(err, "event", ev.ID.String())
	}

	if tag.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, ev.ID)
		if err != nil {
			return domain.Event{}, false, err
		}
		return existing, false, nil
	}

	stored, err := r.GetByID(ctx, ev.ID)
	if err != nil {
		return domain.Event{}, false, err
	}
	return stored, true, nil
}

const markProcessedSQL = `
UPDATE events SET processed_at = $2
WHERE id = $1 AND processed_at IS NULL`

// MarkProcessed stamps processed_at if it is still unset. Idempotent: a
// second call is a no-op. Returns domain.ErrNotFound if the event does
// not exist at all.
func (r *Repo) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markProcessedSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "event", id.String())
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either already processed (fine) or missing (NotFound).
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "event", id.String())
	}
	if !exists {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getEventByIDSQL = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

// GetByID returns an event by primary key.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getEventByIDSQL, id)
	ev, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", id.String())
	}
	return ev, nil
}

// List returns a team's events ordered by created_at DESC, filtered and
// bounded by the filter. The result is never unbounded.
func (r *Repo) List(ctx context.Context, teamID uuid.UUID, filter Filter) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	filter.normalize()

	builder := psql.
		Select("id", "team_id", "type", "payload", "metadata", "delayed_until", "created_at", "processed_at").
		From("events").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit))

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Since != nil {
		builder = builder.Where(sq.Gt{"created_at": *filter.Since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, filter.Limit)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

const listDueSQL = `
SELECT ` + eventColumns + ` FROM events
WHERE delayed_until IS NOT NULL
  AND delayed_until <= $1
  AND processed_at IS NULL
ORDER BY delayed_until ASC`

// ListDue returns delayed events whose visibility time has passed and
// which have not been marked processed, oldest delay first.
func (r *Repo) ListDue(ctx context.Context, now time.Time) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueSQL, now)
	if err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}

	return events, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one event row. delayed_until lives in its own column;
// it is folded back into the metadata on the way out so callers see the
// full metadata document.
func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		ev           domain.Event
		evType       string
		metaJSON     []byte
		delayedUntil *time.Time
	)

	err := row.Scan(&ev.ID, &ev.TeamID, &evType, &ev.Payload, &metaJSON, &delayedUntil, &ev.CreatedAt, &ev.ProcessedAt)
	if err != nil {
		return domain.Event{}, err
	}
	ev.Type = domain.EventType(evType)

	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &ev.Metadata); err != nil {
			return domain.Event{}, fmt.Errorf("event %s unmarshal metadata: %w", ev.ID, err)
		}
	}
	ev.Metadata.DelayedUntil = delayedUntil

	return ev, nil
}

// metadataJSON marshals the metadata without delayed_until (stored in its
// own column). Returns nil for empty metadata so the column stays NULL.
func metadataJSON(m domain.EventMetadata) ([]byte, error) {
	m.DelayedUntil = nil
	if m.IsZero() {
		return nil, nil
	}
	return json.Marshal(m)
}
