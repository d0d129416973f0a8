package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-service/internal/domain"
)

// VendorRepository encapsulates vendor catalog persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	List(ctx context.Context, availableOnly bool) ([]domain.Vendor, error)
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository instantiates repository.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

const vendorColumns = `id, name, vendor_type, description, base_price, contact_person,
        contact_phone, contact_email, available, created_at, updated_at`

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (name, vendor_type, description, base_price, contact_person,
            contact_phone, contact_email, available)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.VendorType,
		vendor.Description,
		vendor.BasePrice,
		vendor.ContactPerson,
		vendor.ContactPhone,
		vendor.ContactEmail,
		vendor.Available,
	).Scan(&vendor.ID, &vendor.CreatedAt, &vendor.UpdatedAt)
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        UPDATE vendors SET name=$1, vendor_type=$2, description=$3, base_price=$4,
            contact_person=$5, contact_phone=$6, contact_email=$7, available=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		vendor.Name,
		vendor.VendorType,
		vendor.Description,
		vendor.BasePrice,
		vendor.ContactPerson,
		vendor.ContactPhone,
		vendor.ContactEmail,
		vendor.Available,
		vendor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id=$1`, id).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.VendorType,
		&vendor.Description,
		&vendor.BasePrice,
		&vendor.ContactPerson,
		&vendor.ContactPhone,
		&vendor.ContactEmail,
		&vendor.Available,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, availableOnly bool) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if availableOnly {
		query += ` WHERE available=TRUE`
	}
	query += ` ORDER BY vendor_type, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Vendor
	for rows.Next() {
		var vendor domain.Vendor
		if err := rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.VendorType,
			&vendor.Description,
			&vendor.BasePrice,
			&vendor.ContactPerson,
			&vendor.ContactPhone,
			&vendor.ContactEmail,
			&vendor.Available,
			&vendor.CreatedAt,
			&vendor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, vendor)
	}
	return result, rows.Err()
}
