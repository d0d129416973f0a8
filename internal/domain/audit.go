package domain

import "time"

// AuditLog records who changed what, for admin review.
type AuditLog struct {
	ID          string
	Action      string
	EntityType  string
	EntityID    string
	ActorID     *string
	OldValues   map[string]any
	NewValues   map[string]any
	Description string
	CreatedAt   time.Time
}
