package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
)

// PaymentRepository encapsulates payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Payment, error)
	SumPaidByEvent(ctx context.Context, eventID string) (decimal.Decimal, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

const paymentColumns = `id, event_id, user_id, amount, status, method, transaction_id,
        receipt_number, currency, paid_at, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (event_id, user_id, amount, status, method, transaction_id,
            receipt_number, currency, paid_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		payment.EventID,
		payment.UserID,
		payment.Amount,
		payment.Status,
		payment.Method,
		payment.TransactionID,
		payment.ReceiptNumber,
		payment.Currency,
		payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE event_id=$1 ORDER BY created_at DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.EventID,
			&payment.UserID,
			&payment.Amount,
			&payment.Status,
			&payment.Method,
			&payment.TransactionID,
			&payment.ReceiptNumber,
			&payment.Currency,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}

func (r *paymentRepository) SumPaidByEvent(ctx context.Context, eventID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE event_id=$1 AND status=$2`,
		eventID, domain.PaymentStatusPaid,
	).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status=$1`,
		domain.PaymentStatusPaid,
	).Scan(&sum)
	return sum, err
}
