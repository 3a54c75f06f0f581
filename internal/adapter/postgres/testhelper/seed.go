package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketstage/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTeam registers a team with a unique name. Returns a filled domain.Team.
func SeedTeam(t *testing.T, pool *pgxpool.Pool) domain.Team {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	team := domain.Team{
		ID:        uuid.New(),
		Name:      "team-" + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO teams (id, name, created_at) VALUES ($1, $2, $3)`,
		team.ID, team.Name, team.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTeam insert team: %v", err)
	}

	return team
}

// SeedSKU adds a catalog entry with a unique SKU. Returns the filled
// domain.CatalogEntry.
func SeedSKU(t *testing.T, pool *pgxpool.Pool, initialStock int) domain.CatalogEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	entry := domain.CatalogEntry{
		SKU:          "TST-" + suffix,
		Name:         "Test Item " + suffix,
		Category:     "test",
		InitialStock: initialStock,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO catalog (sku, name, category, initial_stock) VALUES ($1, $2, $3, $4)`,
		entry.SKU, entry.Name, entry.Category, entry.InitialStock,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSKU insert catalog entry: %v", err)
	}

	return entry
}

// SeedInventory creates a team, a catalog SKU, and an initialized inventory
// row for the pair. Returns the team, the SKU, and the starting record.
func SeedInventory(t *testing.T, pool *pgxpool.Pool, stock int) (domain.Team, domain.CatalogEntry, domain.InventoryRecord) {
	t.Helper()
	ctx := context.Background()

	team := SeedTeam(t, pool)
	sku := SeedSKU(t, pool, stock)

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.InventoryRecord{
		TeamID:    team.ID,
		SKU:       sku.SKU,
		Name:      sku.Name,
		Stock:     stock,
		Reserved:  0,
		Version:   1,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO inventory (team_id, sku, stock, reserved, version, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.TeamID, rec.SKU, rec.Stock, rec.Reserved, rec.Version, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInventory insert inventory: %v", err)
	}

	return team, sku, rec
}

// SeedEvent inserts an event row directly. Returns the stored domain.Event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, teamID uuid.UUID, evType domain.EventType, payload string) domain.Event {
	t.Helper()
	ctx := context.Background()

	ev := domain.Event{
		ID:        uuid.New(),
		TeamID:    teamID,
		Type:      evType,
		Payload:   []byte(payload),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, team_id, type, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		ev.ID, ev.TeamID, string(ev.Type), ev.Payload, ev.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return ev
}
