package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord is the current stock state for one (team, sku) pair.
//
// Available is always derived as Stock - Reserved; it is never stored.
// Version increases by exactly one on every successful mutation and backs
// the optimistic concurrency check: a write conditioned on a stale version
// affects zero rows and surfaces as ErrConflict.
type InventoryRecord struct {
	TeamID    uuid.UUID
	SKU       string
	Name      string // joined from the catalog, empty when not loaded
	Stock     int
	Reserved  int
	Version   int64
	UpdatedAt time.Time
}

// Available returns the portion of inventory the team may still claim.
func (r *InventoryRecord) Available() int {
	return r.Stock - r.Reserved
}

// InventoryAuditEntry is an append-only record of one ledger mutation.
// It is written in the same transaction as the mutation it describes.
type InventoryAuditEntry struct {
	ID            uuid.UUID
	TeamID        uuid.UUID
	SKU           string
	Type          InventoryEventType
	Quantity      int
	PreviousStock int
	NewStock      int
	By            Actor
	Reason        *string // set for manual adjustments only
	CreatedAt     time.Time
}
