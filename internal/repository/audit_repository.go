package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-service/internal/domain"
)

// AuditLogRepository persists admin-reviewable audit entries.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository instantiates repository.
func NewAuditLogRepository(pool *pgxpool.Pool) AuditLogRepository {
	return &auditLogRepository{pool: pool}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	oldValues, err := marshalValues(entry.OldValues)
	if err != nil {
		return err
	}
	newValues, err := marshalValues(entry.NewValues)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO audit_logs (action, entity_type, entity_id, actor_id, old_values, new_values, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.ActorID,
		oldValues,
		newValues,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *auditLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `
        SELECT id, action, entity_type, entity_id, actor_id, old_values, new_values, description, created_at
        FROM audit_logs ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditLog
	for rows.Next() {
		var entry domain.AuditLog
		var oldValues, newValues []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.ActorID,
			&oldValues,
			&newValues,
			&entry.Description,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(oldValues) > 0 {
			if err := json.Unmarshal(oldValues, &entry.OldValues); err != nil {
				return nil, err
			}
		}
		if len(newValues) > 0 {
			if err := json.Unmarshal(newValues, &entry.NewValues); err != nil {
				return nil, err
			}
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func marshalValues(values map[string]any) ([]byte, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}
