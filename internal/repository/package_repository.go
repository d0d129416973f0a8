package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-service/internal/domain"
)

// PackageRepository encapsulates package persistence.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) error
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Package, error)
}

type packageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository instantiates repository.
func NewPackageRepository(pool *pgxpool.Pool) PackageRepository {
	return &packageRepository{pool: pool}
}

const packageColumns = `id, name, package_type, description, base_price, price_per_guest,
        max_guests, active, created_at, updated_at`

func (r *packageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	const query = `
        INSERT INTO packages (name, package_type, description, base_price, price_per_guest, max_guests, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		pkg.Name,
		pkg.PackageType,
		pkg.Description,
		pkg.BasePrice,
		pkg.PricePerGuest,
		pkg.MaxGuests,
		pkg.Active,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *packageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	const query = `
        UPDATE packages SET name=$1, package_type=$2, description=$3, base_price=$4,
            price_per_guest=$5, max_guests=$6, active=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		pkg.Name,
		pkg.PackageType,
		pkg.Description,
		pkg.BasePrice,
		pkg.PricePerGuest,
		pkg.MaxGuests,
		pkg.Active,
		pkg.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	var pkg domain.Package
	if err := r.pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id=$1`, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.PackageType,
		&pkg.Description,
		&pkg.BasePrice,
		&pkg.PricePerGuest,
		&pkg.MaxGuests,
		&pkg.Active,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages`
	if activeOnly {
		query += ` WHERE active=TRUE`
	}
	query += ` ORDER BY base_price ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Package
	for rows.Next() {
		var pkg domain.Package
		if err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.PackageType,
			&pkg.Description,
			&pkg.BasePrice,
			&pkg.PricePerGuest,
			&pkg.MaxGuests,
			&pkg.Active,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, pkg)
	}
	return result, rows.Err()
}
