package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/repository"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// AdminService serves the dashboard and account administration.
type AdminService struct {
	users      repository.UserRepository
	eventsRepo repository.EventRepository
	payments   repository.PaymentRepository
	audit      repository.AuditLogRepository
	cache      *listCache
	dispatcher events.Dispatcher
}

// AdminDependencies bundles requirements for the admin service.
type AdminDependencies struct {
	UserRepo    repository.UserRepository
	EventRepo   repository.EventRepository
	PaymentRepo repository.PaymentRepository
	AuditRepo   repository.AuditLogRepository
	Cache       *listCache
	Dispatcher  events.Dispatcher
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.UserRepo,
		eventsRepo: deps.EventRepo,
		payments:   deps.PaymentRepo,
		audit:      deps.AuditRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// DashboardStats aggregates the admin landing view numbers.
type DashboardStats struct {
	TotalEvents    int64                        `json:"total_events"`
	EventsByStatus map[domain.EventStatus]int64 `json:"events_by_status"`
	TotalClients   int64                        `json:"total_clients"`
	TotalRevenue   string                       `json:"total_revenue"`
	RecentActivity []domain.AuditLog            `json:"recent_activity"`
	GeneratedAt    time.Time                    `json:"generated_at"`
}

// Dashboard returns aggregate stats, cached for a short window since every
// admin page load requests them.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.cache.get(ctx, dashboardKey, &cached) {
		return &cached, nil
	}

	total, err := s.eventsRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byStatus, err := s.eventsRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	clients, err := s.users.CountByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	recent, err := s.audit.ListRecent(ctx, 20)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	stats := &DashboardStats{
		TotalEvents:    total,
		EventsByStatus: byStatus,
		TotalClients:   clients,
		TotalRevenue:   revenue.StringFixed(2),
		RecentActivity: recent,
		GeneratedAt:    time.Now(),
	}
	s.cache.set(ctx, dashboardKey, stats)
	return stats, nil
}

// ListUsers returns accounts for the admin user table.
func (s *AdminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// ToggleUserActive flips an account's active flag. Admins cannot deactivate
// themselves.
func (s *AdminService) ToggleUserActive(ctx context.Context, adminID, userID string) (*domain.User, error) {
	if adminID == userID {
		return nil, apperrors.NewConflict("cannot change your own account status", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}

	user.Active = !user.Active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserStatusToggled,
			EntityID:  user.ID,
			Actor:     events.Actor{UserID: adminID, Role: domain.RoleAdmin},
			Timestamp: time.Now(),
			Payload:   events.UserStatusToggledPayload{Active: user.Active},
		})
	}
	return user, nil
}

// RecentAudit returns the newest audit entries for the activity page.
func (s *AdminService) RecentAudit(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	entries, err := s.audit.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}
