// Package team implements the team repository using PostgreSQL.
package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/domain"
)

// Repo provides team persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new team repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createIfAbsentSQL = `
INSERT INTO teams (id, name, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`

// CreateIfAbsent registers the team if it is not registered yet.
// Safe to call repeatedly with the same id.
func (r *Repo) CreateIfAbsent(ctx context.Context, t domain.Team) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createIfAbsentSQL, t.ID, t.Name, t.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "team", t.ID.String())
	}
	return nil
}

const getByIDSQL = `SELECT id, name, created_at FROM teams WHERE id = $1`

// GetByID returns a team by primary key.
// Returns domain.ErrNotFound if the team does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Team
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return domain.Team{}, postgres.MapError(err, "team", id.String())
	}
	return t, nil
}

const listSQL = `SELECT id, name, created_at FROM teams ORDER BY created_at`

// List returns all registered teams, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}
