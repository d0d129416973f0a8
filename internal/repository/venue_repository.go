package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-service/internal/domain"
)

// VenueFilter captures catalog search parameters.
type VenueFilter struct {
	MinCapacity   *int
	MaxCapacity   *int
	City          *string
	AvailableOnly bool
	Limit         int
	Offset        int
}

// VenueRepository encapsulates venue persistence.
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) error
	Update(ctx context.Context, venue *domain.Venue) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context, filter VenueFilter) ([]domain.Venue, error)
}

type venueRepository struct {
	pool *pgxpool.Pool
}

// NewVenueRepository instantiates repository.
func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &venueRepository{pool: pool}
}

const venueColumns = `id, name, description, location, city, capacity, base_rent, available,
        rating, created_at, updated_at`

func (r *venueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	const query = `
        INSERT INTO venues (name, description, location, city, capacity, base_rent, available, rating)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		venue.Name,
		venue.Description,
		venue.Location,
		venue.City,
		venue.Capacity,
		venue.BaseRent,
		venue.Available,
		venue.Rating,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
}

func (r *venueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	const query = `
        UPDATE venues SET name=$1, description=$2, location=$3, city=$4, capacity=$5,
            base_rent=$6, available=$7, rating=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		venue.Name,
		venue.Description,
		venue.Location,
		venue.City,
		venue.Capacity,
		venue.BaseRent,
		venue.Available,
		venue.Rating,
		venue.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var venue domain.Venue
	if err := r.pool.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id=$1`, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Description,
		&venue.Location,
		&venue.City,
		&venue.Capacity,
		&venue.BaseRent,
		&venue.Available,
		&venue.Rating,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context, filter VenueFilter) ([]domain.Venue, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.AvailableOnly {
		clauses = append(clauses, "available=TRUE")
	}
	if filter.MinCapacity != nil {
		args = append(args, *filter.MinCapacity)
		clauses = append(clauses, fmt.Sprintf("capacity >= $%d", len(args)))
	}
	if filter.MaxCapacity != nil {
		args = append(args, *filter.MaxCapacity)
		clauses = append(clauses, fmt.Sprintf("capacity <= $%d", len(args)))
	}
	if filter.City != nil && strings.TrimSpace(*filter.City) != "" {
		args = append(args, *filter.City)
		clauses = append(clauses, fmt.Sprintf("city=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM venues WHERE %s ORDER BY capacity ASC LIMIT %d OFFSET %d`,
		venueColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Venue
	for rows.Next() {
		var venue domain.Venue
		if err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Description,
			&venue.Location,
			&venue.City,
			&venue.Capacity,
			&venue.BaseRent,
			&venue.Available,
			&venue.Rating,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, venue)
	}
	return result, rows.Err()
}
