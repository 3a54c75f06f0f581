package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marketstage/backend/internal/domain"
)

// Release consumes a reservation: both stock and reserved drop by quantity.
// This models "the reserved units shipped", not a cancelled reservation
// returning to the available pool.
//
// Returns false without an error if the (team, sku) record does not exist.
// Driving stock or reserved below zero is domain.ErrInvalidState and leaves
// the record untouched.
func (s *Service) Release(ctx context.Context, input ReleaseInput) (bool, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return false, err
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	rec, err := s.inventory.Get(ctx, teamID, input.SKU)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get inventory: %w", err)
	}

	newStock := rec.Stock - input.Quantity
	newReserved := rec.Reserved - input.Quantity
	if newStock < 0 || newReserved < 0 {
		return false, fmt.Errorf("release %d from stock=%d reserved=%d: %w",
			input.Quantity, rec.Stock, rec.Reserved, domain.ErrInvalidState)
	}

	if err := s.applyMutation(ctx, rec, newStock, newReserved, domain.InventoryEventReleased, input.Quantity, input.By, nil); err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "reservation released",
		slog.String("team_id", teamID.String()),
		slog.String("sku", input.SKU),
		slog.Int("quantity", input.Quantity),
		slog.Int("new_stock", newStock),
		slog.String("order_id", input.OrderID),
	)

	return true, nil
}
