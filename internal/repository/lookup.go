package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/localspot/discovery-api/internal/entity"
)

// LookupRepository covers the small reference tables behind the filter UI.
type LookupRepository interface {
	ListInterests(ctx context.Context) ([]entity.Interest, error)
	SeedInterests(ctx context.Context, entries []entity.Interest) error
	ListDealBreakers(ctx context.Context) ([]entity.DealBreaker, error)
}

// PGXLookupRepository implements LookupRepository using pgx.
type PGXLookupRepository struct {
	pool pgxQuerier
}

// NewPGXLookupRepository wires a pgx backed lookup repository.
func NewPGXLookupRepository(pool *pgxpool.Pool) *PGXLookupRepository {
	return &PGXLookupRepository{pool: pool}
}

// ListInterests returns all interests sorted alphabetically by name.
func (r *PGXLookupRepository) ListInterests(ctx context.Context) ([]entity.Interest, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, icon FROM interests ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer rows.Close()

	var interests []entity.Interest
	for rows.Next() {
		var (
			interest entity.Interest
			icon     sql.NullString
		)
		if err := rows.Scan(&interest.ID, &interest.Name, &icon); err != nil {
			return nil, fmt.Errorf("scan interest: %w", err)
		}
		interest.Icon = nullStringPtr(icon)
		interests = append(interests, interest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interests: %w", err)
	}
	return interests, nil
}

// SeedInterests inserts the given entries, leaving existing rows untouched.
// Keyed on id, so repeated calls are idempotent.
func (r *PGXLookupRepository) SeedInterests(ctx context.Context, entries []entity.Interest) error {
	for _, entry := range entries {
		_, err := r.pool.Exec(ctx, `
            INSERT INTO interests (id, name)
            VALUES ($1, $2)
            ON CONFLICT (id) DO NOTHING
        `, entry.ID, entry.Name)
		if err != nil {
			return fmt.Errorf("seed interest %q: %w", entry.ID, err)
		}
	}
	return nil
}

// ListDealBreakers returns all deal breakers sorted alphabetically by label.
func (r *PGXLookupRepository) ListDealBreakers(ctx context.Context) ([]entity.DealBreaker, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, label, icon, category FROM deal_breakers ORDER BY label ASC`)
	if err != nil {
		return nil, fmt.Errorf("list deal breakers: %w", err)
	}
	defer rows.Close()

	// empty table must serialize as [], not null
	entries := []entity.DealBreaker{}
	for rows.Next() {
		var (
			entry    entity.DealBreaker
			icon     sql.NullString
			category sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.Label, &icon, &category); err != nil {
			return nil, fmt.Errorf("scan deal breaker: %w", err)
		}
		entry.Icon = nullStringPtr(icon)
		entry.Category = nullStringPtr(category)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deal breakers: %w", err)
	}
	return entries, nil
}
