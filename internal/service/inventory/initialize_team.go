package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// InitializeTeam registers the team and creates one inventory row per
// catalog entry with stock = initialStock, reserved = 0, version = 1.
//
// Idempotent: re-running never duplicates rows and never overwrites the
// counters of an already-initialized team.
func (s *Service) InitializeTeam(ctx context.Context, input InitializeTeamInput) error {
	if !ctxutil.IsStaff(ctx) {
		return domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	if err := s.teams.CreateIfAbsent(ctx, domain.Team{
		ID:        input.TeamID,
		Name:      input.Name,
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("create team: %w", err)
	}

	entries, err := s.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}

	var created int
	for _, entry := range entries {
		ok, err := s.inventory.CreateIfAbsent(ctx, input.TeamID, entry.SKU, entry.InitialStock, now)
		if err != nil {
			return fmt.Errorf("init inventory %s: %w", entry.SKU, err)
		}
		if ok {
			created++
		}
	}

	s.log.InfoContext(ctx, "team initialized",
		slog.String("team_id", input.TeamID.String()),
		slog.String("name", input.Name),
		slog.Int("skus", len(entries)),
		slog.Int("rows_created", created),
	)

	return nil
}
