package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/validate"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

func maxGuests(n int) *int { return &n }

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:        "venue-1",
		Name:      "Lawn A",
		Capacity:  200,
		BaseRent:  decimal.NewFromInt(30000),
		Available: true,
	}
}

func testPackage() *domain.Package {
	return &domain.Package{
		ID:        "pkg-1",
		Name:      "Gold",
		BasePrice: decimal.NewFromInt(50000),
		MaxGuests: maxGuests(500),
		Active:    true,
	}
}

func newTestEventService() (*EventService, *fakeEventRepo, *fakeEventVendorRepo, *fakePaymentRepo) {
	eventRepo := newFakeEventRepo()
	vendorAssignments := &fakeEventVendorRepo{}
	payments := &fakePaymentRepo{}
	svc := NewEventService(EventDependencies{
		EventRepo:       eventRepo,
		VenueRepo:       newFakeVenueRepo(testVenue()),
		PackageRepo:     newFakePackageRepo(testPackage()),
		EventVendorRepo: vendorAssignments,
		PaymentRepo:     payments,
	})
	return svc, eventRepo, vendorAssignments, payments
}

func validInput() EventInput {
	venueID := "venue-1"
	packageID := "pkg-1"
	return EventInput{
		Name:           "Annual Gala",
		EventType:      "corporate",
		EventDate:      time.Now().AddDate(0, 1, 0).Format(validate.DateLayout),
		EventTime:      "18:00",
		ExpectedGuests: 50,
		VenueID:        &venueID,
		PackageID:      &packageID,
	}
}

func TestCreateEventStartsPending(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPending, event.Status)
	assert.NotEmpty(t, event.ID)
}

func TestCreateEventNormalizesBlankSelections(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	blank := ""
	input := validInput()
	input.VenueID = &blank
	input.PackageID = &blank

	event, err := svc.Create(context.Background(), "owner-1", input)
	require.NoError(t, err)
	assert.Nil(t, event.VenueID)
	assert.Nil(t, event.PackageID)
}

func TestCreateEventRejectsPastDate(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	input := validInput()
	input.EventDate = "2020-01-01"

	_, err := svc.Create(context.Background(), "owner-1", input)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "event_date")
}

func TestCreateEventRejectsVenueOverCapacity(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	input := validInput()
	input.ExpectedGuests = 500

	_, err := svc.Create(context.Background(), "owner-1", input)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "venue_id")
}

func TestGetHidesForeignEvents(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "owner-2", false, event.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	fetched, err := svc.Get(context.Background(), "owner-2", true, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, fetched.ID)
}

func TestUpdateBlockedOnceCompleted(t *testing.T) {
	svc, eventRepo, _, _ := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	stored := eventRepo.byID[event.ID]
	stored.Status = domain.EventStatusCompleted

	_, err = svc.Update(context.Background(), "owner-1", false, event.ID, validInput())
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestDeleteRules(t *testing.T) {
	cases := []struct {
		status  domain.EventStatus
		allowed bool
	}{
		{domain.EventStatusPending, true},
		{domain.EventStatusCancelled, true},
		{domain.EventStatusConfirmed, false},
		{domain.EventStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			svc, eventRepo, _, _ := newTestEventService()
			event, err := svc.Create(context.Background(), "owner-1", validInput())
			require.NoError(t, err)
			eventRepo.byID[event.ID].Status = tc.status

			err = svc.Delete(context.Background(), "owner-1", false, event.ID)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
			}
		})
	}
}

func TestChangeStatusTransitions(t *testing.T) {
	svc, eventRepo, _, _ := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	confirmed, err := svc.ChangeStatus(context.Background(), "admin-1", event.ID, domain.EventStatusConfirmed, "approved")
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
	assert.Equal(t, "approved", confirmed.AdminNotes)

	// Completed is terminal.
	eventRepo.byID[event.ID].Status = domain.EventStatusCompleted
	_, err = svc.ChangeStatus(context.Background(), "admin-1", event.ID, domain.EventStatusCancelled, "")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), "admin-1", event.ID, domain.EventStatus("ARCHIVED"), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestTotalsCombineSelectionsVendorsAndPayments(t *testing.T) {
	svc, _, vendorAssignments, payments := newTestEventService()

	event, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	custom := decimal.NewFromInt(11000)
	require.NoError(t, vendorAssignments.Create(context.Background(), &domain.EventVendor{
		EventID:     event.ID,
		VendorID:    "vendor-1",
		Quantity:    2,
		CustomPrice: &custom,
	}))
	require.NoError(t, payments.Create(context.Background(), &domain.Payment{
		EventID: event.ID,
		Amount:  decimal.NewFromInt(25000),
		Status:  domain.PaymentStatusPaid,
	}))

	totals, err := svc.Totals(context.Background(), "owner-1", false, event.ID)
	require.NoError(t, err)

	// Gold 50,000 + Lawn A 30,000 + vendor 2 x 11,000.
	assert.True(t, totals.Quote.Equal(decimal.NewFromInt(80000)), totals.Quote.String())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(102000)), totals.Total.String())
	assert.True(t, totals.Remaining.Equal(decimal.NewFromInt(77000)), totals.Remaining.String())
	assert.Equal(t, "₹1,02,000.00", totals.TotalDisplay)
}

func TestListForOwnerSetsStatusClass(t *testing.T) {
	svc, _, _, _ := newTestEventService()

	_, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner-2", validInput())
	require.NoError(t, err)

	summaries, err := svc.ListForOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "warning", summaries[0].StatusClass)
}
