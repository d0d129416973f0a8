package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
)

// EventFilter captures listing parameters.
type EventFilter struct {
	OwnerID    *string
	Statuses   []domain.EventStatus
	EventType  *string
	SearchTerm *string
	Limit      int
	Offset     int
}

// EventListItem is an event row joined with its venue/package selections so
// the listing view never needs follow-up queries.
type EventListItem struct {
	Event         domain.Event
	VenueName     *string
	VenueRent     *decimal.Decimal
	PackageName   *string
	PackageBase   *decimal.Decimal
	PackagePerCap *decimal.Decimal
}

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListWithFilter(ctx context.Context, filter EventFilter) ([]EventListItem, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, owner_id, name, event_type, description, event_date, event_time,
        expected_guests, venue_id, package_id, special_requests, status, admin_notes,
        confirmed_at, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (owner_id, name, event_type, description, event_date, event_time,
            expected_guests, venue_id, package_id, special_requests, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.OwnerID,
		event.Name,
		event.EventType,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.ExpectedGuests,
		event.VenueID,
		event.PackageID,
		event.SpecialRequests,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET name=$1, event_type=$2, description=$3, event_date=$4, event_time=$5,
            expected_guests=$6, venue_id=$7, package_id=$8, special_requests=$9, status=$10,
            admin_notes=$11, confirmed_at=$12, updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		event.Name,
		event.EventType,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.ExpectedGuests,
		event.VenueID,
		event.PackageID,
		event.SpecialRequests,
		event.Status,
		event.AdminNotes,
		event.ConfirmedAt,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1`, id).Scan(
		&event.ID,
		&event.OwnerID,
		&event.Name,
		&event.EventType,
		&event.Description,
		&event.EventDate,
		&event.EventTime,
		&event.ExpectedGuests,
		&event.VenueID,
		&event.PackageID,
		&event.SpecialRequests,
		&event.Status,
		&event.AdminNotes,
		&event.ConfirmedAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListWithFilter(ctx context.Context, filter EventFilter) ([]EventListItem, error) {
	base := `SELECT e.id, e.owner_id, e.name, e.event_type, e.description, e.event_date,
                    e.event_time, e.expected_guests, e.venue_id, e.package_id,
                    e.special_requests, e.status, e.admin_notes, e.confirmed_at,
                    e.created_at, e.updated_at,
                    v.name, v.base_rent, p.name, p.base_price, p.price_per_guest
             FROM events e
             LEFT JOIN venues v ON v.id = e.venue_id
             LEFT JOIN packages p ON p.id = e.package_id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("e.owner_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("e.status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.EventType != nil {
		args = append(args, *filter.EventType)
		clauses = append(clauses, fmt.Sprintf("e.event_type=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(e.name) LIKE %s OR LOWER(e.description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY e.created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEventListItems(rows)
}

func scanEventListItems(rows pgx.Rows) ([]EventListItem, error) {
	var result []EventListItem
	for rows.Next() {
		var item EventListItem
		if err := rows.Scan(
			&item.Event.ID,
			&item.Event.OwnerID,
			&item.Event.Name,
			&item.Event.EventType,
			&item.Event.Description,
			&item.Event.EventDate,
			&item.Event.EventTime,
			&item.Event.ExpectedGuests,
			&item.Event.VenueID,
			&item.Event.PackageID,
			&item.Event.SpecialRequests,
			&item.Event.Status,
			&item.Event.AdminNotes,
			&item.Event.ConfirmedAt,
			&item.Event.CreatedAt,
			&item.Event.UpdatedAt,
			&item.VenueName,
			&item.VenueRent,
			&item.PackageName,
			&item.PackageBase,
			&item.PackagePerCap,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *eventRepository) CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM events GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.EventStatus]int64)
	for rows.Next() {
		var status domain.EventStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
