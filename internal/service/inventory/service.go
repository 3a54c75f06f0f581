// Package inventory implements the inventory ledger business logic.
//
// All mutations follow the same protocol: read the current record, compute
// the new counters, then write with a version-guarded conditional update
// inside one transaction together with the audit entry. A version mismatch
// surfaces as domain.ErrConflict and is never retried here; the caller
// decides whether to re-read and retry.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type inventoryRepo interface {
	CreateIfAbsent(ctx context.Context, teamID uuid.UUID, sku string, stock int, at time.Time) (bool, error)
	UpdateGuarded(ctx context.Context, teamID uuid.UUID, sku string, expectedVersion int64, stock, reserved int, at time.Time) error
	Get(ctx context.Context, teamID uuid.UUID, sku string) (domain.InventoryRecord, error)
	List(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryRecord, error)
}

type auditRepo interface {
	Create(ctx context.Context, entry domain.InventoryAuditEntry) error
	ListByItem(ctx context.Context, teamID uuid.UUID, sku string, limit int) ([]domain.InventoryAuditEntry, error)
}

type catalogRepo interface {
	List(ctx context.Context) ([]domain.CatalogEntry, error)
}

type teamRepo interface {
	CreateIfAbsent(ctx context.Context, t domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the inventory ledger business logic.
type Service struct {
	inventory inventoryRepo
	audit     auditRepo
	catalog   catalogRepo
	teams     teamRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new inventory service.
func NewService(
	log *slog.Logger,
	inventory inventoryRepo,
	audit auditRepo,
	catalog catalogRepo,
	teams teamRepo,
	tx txManager,
) *Service {
	return &Service{
		inventory: inventory,
		audit:     audit,
		catalog:   catalog,
		teams:     teams,
		tx:        tx,
		log:       log.With("service", "inventory"),
	}
}

// resolveTeamID decides which team's ledger the caller may touch.
// Team callers act only on their own ledger; staff callers name the
// target team explicitly.
func resolveTeamID(ctx context.Context, requested uuid.UUID) (uuid.UUID, error) {
	if teamID, ok := ctxutil.TeamIDFromCtx(ctx); ok {
		if requested != uuid.Nil && requested != teamID {
			return uuid.Nil, domain.ErrForbidden
		}
		return teamID, nil
	}
	if ctxutil.IsStaff(ctx) {
		if requested == uuid.Nil {
			return uuid.Nil, domain.NewValidationError("team_id", "required")
		}
		return requested, nil
	}
	return uuid.Nil, domain.ErrUnauthorized
}

// applyMutation writes the new counters and the matching audit entry in one
// transaction. The audit trail must never diverge from the ledger.
func (s *Service) applyMutation(
	ctx context.Context,
	rec domain.InventoryRecord,
	newStock, newReserved int,
	entryType domain.InventoryEventType,
	quantity int,
	by domain.Actor,
	reason *string,
) error {
	now := time.Now().UTC()

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.inventory.UpdateGuarded(txCtx, rec.TeamID, rec.SKU, rec.Version, newStock, newReserved, now); err != nil {
			return err
		}

		entry := domain.InventoryAuditEntry{
			ID:            uuid.New(),
			TeamID:        rec.TeamID,
			SKU:           rec.SKU,
			Type:          entryType,
			Quantity:      quantity,
			PreviousStock: rec.Stock,
			NewStock:      newStock,
			By:            by,
			Reason:        reason,
			CreatedAt:     now,
		}
		if err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create audit entry: %w", err)
		}
		return nil
	})
}
