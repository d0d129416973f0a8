package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-service/internal/domain"
)

// GuestRepository encapsulates guest persistence.
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error)
}

type guestRepository struct {
	pool *pgxpool.Pool
}

// NewGuestRepository instantiates repository.
func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &guestRepository{pool: pool}
}

const guestColumns = `id, event_id, first_name, last_name, email, phone, rsvp_status, rsvp_at,
        plus_one_count, notes, created_at, updated_at`

func (r *guestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	const query = `
        INSERT INTO guests (event_id, first_name, last_name, email, phone, rsvp_status,
            plus_one_count, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		guest.EventID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.RSVPStatus,
		guest.PlusOneCount,
		guest.Notes,
	).Scan(&guest.ID, &guest.CreatedAt, &guest.UpdatedAt)
}

func (r *guestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	const query = `
        UPDATE guests SET first_name=$1, last_name=$2, email=$3, phone=$4, rsvp_status=$5,
            rsvp_at=$6, plus_one_count=$7, notes=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.RSVPStatus,
		guest.RSVPAt,
		guest.PlusOneCount,
		guest.Notes,
		guest.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM guests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	var guest domain.Guest
	if err := r.pool.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE id=$1`, id).Scan(
		&guest.ID,
		&guest.EventID,
		&guest.FirstName,
		&guest.LastName,
		&guest.Email,
		&guest.Phone,
		&guest.RSVPStatus,
		&guest.RSVPAt,
		&guest.PlusOneCount,
		&guest.Notes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+guestColumns+` FROM guests WHERE event_id=$1 ORDER BY created_at`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Guest
	for rows.Next() {
		var guest domain.Guest
		if err := rows.Scan(
			&guest.ID,
			&guest.EventID,
			&guest.FirstName,
			&guest.LastName,
			&guest.Email,
			&guest.Phone,
			&guest.RSVPStatus,
			&guest.RSVPAt,
			&guest.PlusOneCount,
			&guest.Notes,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, guest)
	}
	return result, rows.Err()
}
