package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-service/internal/domain"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

type fakeGuestRepo struct {
	byID   map[string]*domain.Guest
	nextID int
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{byID: make(map[string]*domain.Guest)}
}

func (r *fakeGuestRepo) Create(_ context.Context, guest *domain.Guest) error {
	r.nextID++
	guest.ID = fmt.Sprintf("guest-%d", r.nextID)
	guest.CreatedAt = time.Now()
	copied := *guest
	r.byID[guest.ID] = &copied
	return nil
}

func (r *fakeGuestRepo) Update(_ context.Context, guest *domain.Guest) error {
	if _, ok := r.byID[guest.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *guest
	r.byID[guest.ID] = &copied
	return nil
}

func (r *fakeGuestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeGuestRepo) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	guest, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *guest
	return &copied, nil
}

func (r *fakeGuestRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Guest, error) {
	var result []domain.Guest
	for _, guest := range r.byID {
		if guest.EventID == eventID {
			result = append(result, *guest)
		}
	}
	return result, nil
}

func newTestGuestService(t *testing.T) (*GuestService, string) {
	t.Helper()
	eventSvc, eventRepo, _, _ := newTestEventService()
	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	svc := NewGuestService(GuestDependencies{
		GuestRepo: newFakeGuestRepo(),
		EventRepo: eventRepo,
	})
	return svc, event.ID
}

func TestAddGuestDefaultsToPendingRSVP(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	guest, err := svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPPending, guest.RSVPStatus)
	assert.Nil(t, guest.RSVPAt)
}

func TestAddGuestRequiresFirstName(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	_, err := svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{LastName: "Rao", Email: "x@example.com"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestAddGuestRequiresLastName(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	_, err := svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{FirstName: "Asha"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "last_name")
}

func TestSetRSVPStampsResponseTime(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	guest, err := svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{FirstName: "Asha", LastName: "Rao"})
	require.NoError(t, err)

	updated, err := svc.SetRSVP(context.Background(), "owner-1", false, eventID, guest.ID, domain.RSVPConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPConfirmed, updated.RSVPStatus)
	require.NotNil(t, updated.RSVPAt)

	_, err = svc.SetRSVP(context.Background(), "owner-1", false, eventID, guest.ID, domain.RSVPStatus("MAYBE"))
	require.Error(t, err)
}

func TestGuestStatsCountCompanions(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	first, err := svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{FirstName: "Asha", LastName: "Rao", PlusOneCount: 2})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "owner-1", false, eventID, GuestInput{FirstName: "Vikram", LastName: "Nair"})
	require.NoError(t, err)

	_, err = svc.SetRSVP(context.Background(), "owner-1", false, eventID, first.ID, domain.RSVPConfirmed)
	require.NoError(t, err)

	_, stats, err := svc.List(context.Background(), "owner-1", false, eventID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 3, stats.Headcount)
}

func TestGuestAccessHiddenFromStrangers(t *testing.T) {
	svc, eventID := newTestGuestService(t)

	_, err := svc.Add(context.Background(), "owner-2", false, eventID, GuestInput{FirstName: "Asha", LastName: "Rao"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
