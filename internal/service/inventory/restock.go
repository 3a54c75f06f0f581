package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marketstage/backend/internal/domain"
)

// Restock adds quantity to stock and records a `restocked` audit entry in
// the same transaction. On a version conflict the call fails with
// domain.ErrConflict and nothing is written; the caller may re-read and
// retry.
func (s *Service) Restock(ctx context.Context, input RestockInput) (domain.InventoryRecord, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return domain.InventoryRecord{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.InventoryRecord{}, err
	}

	rec, err := s.inventory.Get(ctx, teamID, input.SKU)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("get inventory: %w", err)
	}

	newStock := rec.Stock + input.Quantity

	if err := s.applyMutation(ctx, rec, newStock, rec.Reserved, domain.InventoryEventRestocked, input.Quantity, input.By, nil); err != nil {
		return domain.InventoryRecord{}, err
	}

	s.log.InfoContext(ctx, "inventory restocked",
		slog.String("team_id", teamID.String()),
		slog.String("sku", input.SKU),
		slog.Int("quantity", input.Quantity),
		slog.Int("new_stock", newStock),
		slog.String("by", input.By.String()),
	)

	updated, err := s.inventory.Get(ctx, teamID, input.SKU)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("reload inventory: %w", err)
	}
	return updated, nil
}
