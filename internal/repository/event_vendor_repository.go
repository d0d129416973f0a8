package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
)

// EventVendorDetail joins an assignment with the vendor's display fields so
// line totals can be computed without a second query.
type EventVendorDetail struct {
	Assignment      domain.EventVendor
	VendorName      string
	VendorType      string
	VendorBasePrice decimal.Decimal
}

// EventVendorRepository manages vendor assignments per event.
type EventVendorRepository interface {
	Create(ctx context.Context, assignment *domain.EventVendor) error
	Delete(ctx context.Context, eventID, vendorID string) error
	GetByEventAndVendor(ctx context.Context, eventID, vendorID string) (*domain.EventVendor, error)
	ListByEvent(ctx context.Context, eventID string) ([]EventVendorDetail, error)
}

type eventVendorRepository struct {
	pool *pgxpool.Pool
}

// NewEventVendorRepository instantiates repository.
func NewEventVendorRepository(pool *pgxpool.Pool) EventVendorRepository {
	return &eventVendorRepository{pool: pool}
}

func (r *eventVendorRepository) Create(ctx context.Context, assignment *domain.EventVendor) error {
	const query = `
        INSERT INTO event_vendors (event_id, vendor_id, quantity, custom_price, notes, confirmed)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, booked_at`

	return r.pool.QueryRow(ctx, query,
		assignment.EventID,
		assignment.VendorID,
		assignment.Quantity,
		assignment.CustomPrice,
		assignment.Notes,
		assignment.Confirmed,
	).Scan(&assignment.ID, &assignment.BookedAt)
}

func (r *eventVendorRepository) Delete(ctx context.Context, eventID, vendorID string) error {
	cmd, err := r.pool.Exec(ctx,
		`DELETE FROM event_vendors WHERE event_id=$1 AND vendor_id=$2`, eventID, vendorID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventVendorRepository) GetByEventAndVendor(ctx context.Context, eventID, vendorID string) (*domain.EventVendor, error) {
	const query = `
        SELECT id, event_id, vendor_id, quantity, custom_price, notes, confirmed, booked_at
        FROM event_vendors WHERE event_id=$1 AND vendor_id=$2`

	var assignment domain.EventVendor
	if err := r.pool.QueryRow(ctx, query, eventID, vendorID).Scan(
		&assignment.ID,
		&assignment.EventID,
		&assignment.VendorID,
		&assignment.Quantity,
		&assignment.CustomPrice,
		&assignment.Notes,
		&assignment.Confirmed,
		&assignment.BookedAt,
	); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *eventVendorRepository) ListByEvent(ctx context.Context, eventID string) ([]EventVendorDetail, error) {
	const query = `
        SELECT ev.id, ev.event_id, ev.vendor_id, ev.quantity, ev.custom_price, ev.notes,
               ev.confirmed, ev.booked_at, v.name, v.vendor_type, v.base_price
        FROM event_vendors ev
        JOIN vendors v ON v.id = ev.vendor_id
        WHERE ev.event_id=$1
        ORDER BY ev.booked_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EventVendorDetail
	for rows.Next() {
		var detail EventVendorDetail
		if err := rows.Scan(
			&detail.Assignment.ID,
			&detail.Assignment.EventID,
			&detail.Assignment.VendorID,
			&detail.Assignment.Quantity,
			&detail.Assignment.CustomPrice,
			&detail.Assignment.Notes,
			&detail.Assignment.Confirmed,
			&detail.Assignment.BookedAt,
			&detail.VendorName,
			&detail.VendorType,
			&detail.VendorBasePrice,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}
