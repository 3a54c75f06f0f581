// Package catalog implements the product catalog repository using
// PostgreSQL. The catalog is read-only for the running platform; only the
// seeder writes to it.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `SELECT sku, name, category, initial_stock FROM catalog ORDER BY sku`

// List returns all catalog entries ordered by SKU.
func (r *Repo) List(ctx context.Context) ([]domain.CatalogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.CatalogEntry, 0)
	for rows.Next() {
		var e domain.CatalogEntry
		if err := rows.Scan(&e.SKU, &e.Name, &e.Category, &e.InitialStock); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return entries, nil
}

const getBySKUSQL = `SELECT sku, name, category, initial_stock FROM catalog WHERE sku = $1`

// GetBySKU returns one catalog entry.
// Returns domain.ErrNotFound if the SKU is not in the catalog.
func (r *Repo) GetBySKU(ctx context.Context, sku string) (domain.CatalogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.CatalogEntry
	err := q.QueryRow(ctx, getBySKUSQL, sku).Scan(&e.SKU, &e.Name, &e.Category, &e.InitialStock)
	if err != nil {
		return domain.CatalogEntry{}, postgres.MapError(err, "catalog_entry", sku)
	}
	return e, nil
}

const upsertSQL = `
INSERT INTO catalog (sku, name, category, initial_stock)
VALUES ($1, $2, $3, $4)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name, category = EXCLUDED.category, initial_stock = EXCLUDED.initial_stock`

// Upsert inserts or updates a catalog entry. Used by the seeder only;
// live inventory rows are untouched (initial_stock applies to teams
// initialized after the change).
func (r *Repo) Upsert(ctx context.Context, entry domain.CatalogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertSQL, entry.SKU, entry.Name, entry.Category, entry.InitialStock)
	if err != nil {
		return postgres.MapError(err, "catalog_entry", entry.SKU)
	}
	return nil
}
