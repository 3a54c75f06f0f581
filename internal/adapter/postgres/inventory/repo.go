// Package inventory implements the inventory ledger repository using
// PostgreSQL. All mutations go through a version-guarded conditional
// UPDATE: a write against a stale version affects zero rows and surfaces
// as domain.ErrConflict, so concurrent writers can never both succeed
// against the same starting version.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/domain"
)

// Repo provides inventory record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func key(teamID uuid.UUID, sku string) string {
	return teamID.String() + "/" + sku
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createIfAbsentSQL = `
INSERT INTO inventory (team_id, sku, stock, reserved, version, updated_at)
VALUES ($1, $2, $3, 0, 1, $4)
ON CONFLICT (team_id, sku) DO NOTHING`

// CreateIfAbsent creates the (team, sku) row with the given starting stock
// if it does not exist yet. Re-running team initialization never overwrites
// counters of an already-initialized row. Returns whether a row was created.
func (r *Repo) CreateIfAbsent(ctx context.Context, teamID uuid.UUID, sku string, stock int, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, createIfAbsentSQL, teamID, sku, stock, at)
	if err != nil {
		return false, postgres.MapError(err, "inventory", key(teamID, sku))
	}
	return tag.RowsAffected() > 0, nil
}

const updateGuardedSQL = `
UPDATE inventory
SET stock = $4, reserved = $5, version = version + 1, updated_at = $6
WHERE team_id = $1 AND sku = $2 AND version = $3`

// UpdateGuarded writes new stock/reserved values conditioned on the version
// the caller read. Zero rows affected means another writer won the race;
// that surfaces as domain.ErrConflict and the caller must re-read and
// retry. The check and the increment are one atomic statement.
func (r *Repo) UpdateGuarded(ctx context.Context, teamID uuid.UUID, sku string, expectedVersion int64, stock, reserved int, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateGuardedSQL, teamID, sku, expectedVersion, stock, reserved, at)
	if err != nil {
		return postgres.MapError(err, "inventory", key(teamID, sku))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory %s version %d: %w", key(teamID, sku), expectedVersion, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getItemSQL = `
SELECT i.team_id, i.sku, c.name, i.stock, i.reserved, i.version, i.updated_at
FROM inventory i
JOIN catalog c ON c.sku = i.sku
WHERE i.team_id = $1 AND i.sku = $2`

// Get returns the record for one (team, sku) pair, joined with the catalog
// name. Returns domain.ErrNotFound if the pair is not initialized.
func (r *Repo) Get(ctx context.Context, teamID uuid.UUID, sku string) (domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rec domain.InventoryRecord
	err := q.QueryRow(ctx, getItemSQL, teamID, sku).
		Scan(&rec.TeamID, &rec.SKU, &rec.Name, &rec.Stock, &rec.Reserved, &rec.Version, &rec.UpdatedAt)
	if err != nil {
		return domain.InventoryRecord{}, postgres.MapError(err, "inventory", key(teamID, sku))
	}
	return rec, nil
}

const listSQL = `
SELECT i.team_id, i.sku, c.name, i.stock, i.reserved, i.version, i.updated_at
FROM inventory i
JOIN catalog c ON c.sku = i.sku
WHERE i.team_id = $1
ORDER BY i.sku`

// List returns all inventory records of a team joined with catalog names,
// ordered by SKU. An uninitialized team yields an empty slice.
func (r *Repo) List(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, teamID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	records := make([]domain.InventoryRecord, 0)
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.TeamID, &rec.SKU, &rec.Name, &rec.Stock, &rec.Reserved, &rec.Version, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	return records, nil
}
