// Package inventoryaudit implements the inventory audit trail repository
// using PostgreSQL. It provides append-only operations; entries are
// written in the same transaction as the ledger mutation they describe
// (the service runs both repos inside TxManager.RunInTx).
package inventoryaudit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/domain"
)

// Repo provides audit entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO inventory_events (id, team_id, sku, type, quantity, previous_stock, new_stock, by, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create appends one audit entry.
func (r *Repo) Create(ctx context.Context, entry domain.InventoryAuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		entry.ID, entry.TeamID, entry.SKU, entry.Type,
		entry.Quantity, entry.PreviousStock, entry.NewStock, entry.By, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "inventory_event", entry.ID.String())
	}
	return nil
}

const listByItemSQL = `
SELECT id, team_id, sku, type, quantity, previous_stock, new_stock, by, reason, created_at
FROM inventory_events
WHERE team_id = $1 AND sku = $2
ORDER BY created_at DESC
LIMIT $3`

// ListByItem returns the mutation history of one (team, sku) pair,
// most recent first, limited to `limit` entries.
func (r *Repo) ListByItem(ctx context.Context, teamID uuid.UUID, sku string, limit int) ([]domain.InventoryAuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByItemSQL, teamID, sku, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory_events: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.InventoryAuditEntry, 0, limit)
	for rows.Next() {
		var e domain.InventoryAuditEntry
		var eType, by string
		if err := rows.Scan(&e.ID, &e.TeamID, &e.SKU, &eType, &e.Quantity, &e.PreviousStock, &e.NewStock, &by, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory_event: %w", err)
		}
		e.Type = domain.InventoryEventType(eType)
		e.By = domain.Actor(by)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory_events: %w", err)
	}

	return entries, nil
}
