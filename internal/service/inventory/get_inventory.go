package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

const defaultHistoryLimit = 50

// GetInventory returns all inventory records of the caller's team (or any
// team, for staff), joined with catalog names and ordered by SKU.
func (s *Service) GetInventory(ctx context.Context, requestedTeamID uuid.UUID) ([]domain.InventoryRecord, error) {
	teamID, err := resolveTeamID(ctx, requestedTeamID)
	if err != nil {
		return nil, err
	}

	records, err := s.inventory.List(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return records, nil
}

// GetInventoryItem returns one (team, sku) record.
// Returns domain.ErrNotFound if the pair is not initialized.
func (s *Service) GetInventoryItem(ctx context.Context, requestedTeamID uuid.UUID, sku string) (domain.InventoryRecord, error) {
	teamID, err := resolveTeamID(ctx, requestedTeamID)
	if err != nil {
		return domain.InventoryRecord{}, err
	}
	if sku == "" {
		return domain.InventoryRecord{}, domain.NewValidationError("sku", "required")
	}

	rec, err := s.inventory.Get(ctx, teamID, sku)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("get inventory item: %w", err)
	}
	return rec, nil
}

// GetItemHistory returns an item's audit trail, most recent first.
func (s *Service) GetItemHistory(ctx context.Context, input GetItemHistoryInput) ([]domain.InventoryAuditEntry, error) {
	teamID, err := resolveTeamID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.audit.ListByItem(ctx, teamID, input.SKU, limit)
	if err != nil {
		return nil, fmt.Errorf("list item history: %w", err)
	}
	return entries, nil
}
