package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/localspot/discovery-api/internal/dto"
	"github.com/localspot/discovery-api/internal/entity"
)

// ErrBusinessNotFound is returned when no business matches the lookup key.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessesRepository describes read operations for the business catalogue.
type BusinessesRepository interface {
	List(ctx context.Context, filter dto.BusinessFilter) ([]entity.Business, error)
	FindByIDOrSlug(ctx context.Context, key string, includeInactive bool) (*entity.Business, error)
}

// pgxQuerier is the subset of pgxpool.Pool the repositories rely on.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ pgxQuerier = (*pgxpool.Pool)(nil)

// PGXBusinessesRepository implements BusinessesRepository using pgx.
type PGXBusinessesRepository struct {
	pool pgxQuerier
}

// NewPGXBusinessesRepository wires a pgx backed repository.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

const businessColumns = `
        id,
        slug,
        name,
        category,
        location,
        rating,
        total_rating,
        reviews,
        badge,
        verified,
        image_url,
        image_alt,
        href,
        service_score,
        price_score,
        ambience_score,
        distance_km,
        price_range,
        description,
        phone,
        website,
        address,
        status,
        created_at,
        updated_at
`

// List retrieves businesses matching the filter, sorted by total rating then
// review count (both descending, ties broken by name).
func (r *PGXBusinessesRepository) List(ctx context.Context, filter dto.BusinessFilter) ([]entity.Business, error) {
	query := strings.Builder{}
	query.WriteString("SELECT ")
	query.WriteString(businessColumns)
	query.WriteString(" FROM businesses")

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if !filter.IncludeInactive {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, entity.StatusActive)
		idx++
	}
	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if filter.Badge != "" {
		clauses = append(clauses, fmt.Sprintf("badge = $%d", idx))
		args = append(args, filter.Badge)
		idx++
	}
	if filter.VerifiedOnly {
		clauses = append(clauses, "verified = TRUE")
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}

	query.WriteString(" ORDER BY total_rating DESC NULLS LAST, reviews DESC NULLS LAST, name ASC")

	if filter.Limit > 0 {
		query.WriteString(fmt.Sprintf(" LIMIT $%d", idx))
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// FindByIDOrSlug resolves a single business by primary key or slug, whichever
// matches. The caller does not need to know which kind of key it holds.
func (r *PGXBusinessesRepository) FindByIDOrSlug(ctx context.Context, key string, includeInactive bool) (*entity.Business, error) {
	query := strings.Builder{}
	query.WriteString("SELECT ")
	query.WriteString(businessColumns)
	query.WriteString(" FROM businesses WHERE (id::text = $1 OR slug = $1)")
	if !includeInactive {
		query.WriteString(" AND status = $2")
	}
	query.WriteString(" LIMIT 1")

	args := []any{key}
	if !includeInactive {
		args = append(args, entity.StatusActive)
	}

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("find business %q: %w", key, err)
	}
	defer rows.Close()

	records, err := scanBusinesses(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrBusinessNotFound
	}
	return &records[0], nil
}

func scanBusinesses(rows pgx.Rows) ([]entity.Business, error) {
	var businesses []entity.Business
	for rows.Next() {
		var (
			b             entity.Business
			category      sql.NullString
			location      sql.NullString
			rating        sql.NullFloat64
			totalRating   sql.NullFloat64
			reviews       sql.NullInt64
			badge         sql.NullString
			imageURL      sql.NullString
			imageAlt      sql.NullString
			href          sql.NullString
			serviceScore  sql.NullFloat64
			priceScore    sql.NullFloat64
			ambienceScore sql.NullFloat64
			distanceKm    sql.NullFloat64
			priceRange    sql.NullString
			description   sql.NullString
			phone         sql.NullString
			website       sql.NullString
			address       sql.NullString
		)

		err := rows.Scan(
			&b.ID,
			&b.Slug,
			&b.Name,
			&category,
			&location,
			&rating,
			&totalRating,
			&reviews,
			&badge,
			&b.Verified,
			&imageURL,
			&imageAlt,
			&href,
			&serviceScore,
			&priceScore,
			&ambienceScore,
			&distanceKm,
			&priceRange,
			&description,
			&phone,
			&website,
			&address,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}

		b.Category = nullStringPtr(category)
		b.Location = nullStringPtr(location)
		b.Rating = nullFloatPtr(rating)
		b.TotalRating = nullFloatPtr(totalRating)
		b.Reviews = nullIntPtr(reviews)
		b.Badge = nullStringPtr(badge)
		b.ImageURL = nullStringPtr(imageURL)
		b.ImageAlt = nullStringPtr(imageAlt)
		b.Href = nullStringPtr(href)
		b.ServiceScore = nullFloatPtr(serviceScore)
		b.PriceScore = nullFloatPtr(priceScore)
		b.AmbienceScore = nullFloatPtr(ambienceScore)
		b.DistanceKm = nullFloatPtr(distanceKm)
		b.PriceRange = nullStringPtr(priceRange)
		b.Description = nullStringPtr(description)
		b.Phone = nullStringPtr(phone)
		b.Website = nullStringPtr(website)
		b.Address = nullStringPtr(address)

		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return businesses, nil
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	val := value.String
	return &val
}

func nullFloatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	val := value.Float64
	return &val
}

func nullIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	val := int(value.Int64)
	return &val
}
