package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// Adjust applies a signed manual correction to stock. Staff only. The
// mandatory reason goes into the audit trail together with the delta.
// A delta that would drive stock below zero (or below the reserved count)
// is domain.ErrInvalidState and leaves the record untouched.
func (s *Service) Adjust(ctx context.Context, input AdjustInput) (domain.InventoryRecord, error) {
	if !ctxutil.IsStaff(ctx) {
		return domain.InventoryRecord{}, domain.ErrForbidden
	}

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

	newStock := rec.Stock + input.Delta
	if newStock < 0 {
		return domain.InventoryRecord{}, fmt.Errorf("adjust by %d from stock=%d: %w",
			input.Delta, rec.Stock, domain.ErrInvalidState)
	}
	if newStock < rec.Reserved {
		return domain.InventoryRecord{}, fmt.Errorf("adjust by %d would leave stock=%d below reserved=%d: %w",
			input.Delta, newStock, rec.Reserved, domain.ErrInvalidState)
	}

	if err := s.applyMutation(ctx, rec, newStock, rec.Reserved, domain.InventoryEventAdjusted, input.Delta, domain.ActorStaff, &input.Reason); err != nil {
		return domain.InventoryRecord{}, err
	}

	s.log.InfoContext(ctx, "inventory adjusted",
		slog.String("team_id", teamID.String()),
		slog.String("sku", input.SKU),
		slog.Int("delta", input.Delta),
		slog.Int("new_stock", newStock),
		slog.String("reason", input.Reason),
	)

	updated, err := s.inventory.Get(ctx, teamID, input.SKU)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("reload inventory: %w", err)
	}
	return updated, nil
}
