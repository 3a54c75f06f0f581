package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marketstage/backend/internal/domain"
)

// Reserve attempts to move quantity from available to reserved.
//
// Insufficient stock is a normal negative outcome, not a fault: the call
// returns false without mutating anything and without an error. A version
// conflict is domain.ErrConflict (the caller may retry).
func (s *Service) Reserve(ctx context.Context, input ReserveInput) (bool, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return false, err
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	rec, err := s.inventory.Get(ctx, teamID, input.SKU)
	if err != nil {
		return false, fmt.Errorf("get inventory: %w", err)
	}

	if rec.Available() < input.Quantity {
		s.log.InfoContext(ctx, "reservation declined: insufficient stock",
			slog.String("team_id", teamID.String()),
			slog.String("sku", input.SKU),
			slog.Int("requested", input.Quantity),
			slog.Int("available", rec.Available()),
			slog.String("order_id", input.OrderID),
		)
		return false, nil
	}

	newReserved := rec.Reserved + input.Quantity

	if err := s.applyMutation(ctx, rec, rec.Stock, newReserved, domain.InventoryEventReserved, input.Quantity, input.By, nil); err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "stock reserved",
		slog.String("team_id", teamID.String()),
		slog.String("sku", input.SKU),
		slog.Int("quantity", input.Quantity),
		slog.Int("reserved", newReserved),
		slog.String("order_id", input.OrderID),
	)

	return true, nil
}
