package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-service/internal/domain"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

func testVendor() *domain.Vendor {
	return &domain.Vendor{
		ID:         "vendor-1",
		Name:       "Spice Route Catering",
		VendorType: "catering",
		BasePrice:  decimal.NewFromInt(25000),
		Available:  true,
	}
}

func newTestVendorService(t *testing.T) (*VendorService, string) {
	t.Helper()
	eventSvc, eventRepo, _, _ := newTestEventService()
	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	svc := NewVendorService(VendorDependencies{
		VendorRepo:      newFakeVendorRepo(testVendor()),
		EventVendorRepo: &fakeEventVendorRepo{},
		EventRepo:       eventRepo,
	})
	return svc, event.ID
}

func TestAssignVendor(t *testing.T) {
	svc, eventID := newTestVendorService(t)

	assignment, err := svc.Assign(context.Background(), "owner-1", false, eventID, AssignInput{
		VendorID: "vendor-1",
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, assignment.Quantity)
	assert.Equal(t, "vendor-1", assignment.VendorID)
}

func TestAssignVendorRejectsNonPositiveQuantity(t *testing.T) {
	svc, eventID := newTestVendorService(t)

	for _, quantity := range []int{0, -1} {
		_, err := svc.Assign(context.Background(), "owner-1", false, eventID, AssignInput{
			VendorID: "vendor-1",
			Quantity: quantity,
		})
		require.Error(t, err)

		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		assert.Contains(t, domainErr.Details, "quantity")
	}
}

func TestAssignVendorRejectsDuplicate(t *testing.T) {
	svc, eventID := newTestVendorService(t)

	_, err := svc.Assign(context.Background(), "owner-1", false, eventID, AssignInput{VendorID: "vendor-1", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), "owner-1", false, eventID, AssignInput{VendorID: "vendor-1", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}
