package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/repository"
)

type fakeEventRepo struct {
	byID    map[string]*domain.Event
	nextID  int
	deleted []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.nextID++
	event.ID = fmt.Sprintf("evt-%d", r.nextID)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	r.byID[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.byID[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *event
	r.byID[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) ListWithFilter(_ context.Context, filter repository.EventFilter) ([]repository.EventListItem, error) {
	var result []repository.EventListItem
	for _, event := range r.byID {
		if filter.OwnerID != nil && event.OwnerID != *filter.OwnerID {
			continue
		}
		result = append(result, repository.EventListItem{Event: *event})
	}
	return result, nil
}

func (r *fakeEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeEventRepo) CountByStatus(_ context.Context) (map[domain.EventStatus]int64, error) {
	counts := make(map[domain.EventStatus]int64)
	for _, event := range r.byID {
		counts[event.Status]++
	}
	return counts, nil
}

type fakeVenueRepo struct {
	byID map[string]*domain.Venue
}

func newFakeVenueRepo(venues ...*domain.Venue) *fakeVenueRepo {
	repo := &fakeVenueRepo{byID: make(map[string]*domain.Venue)}
	for _, venue := range venues {
		repo.byID[venue.ID] = venue
	}
	return repo
}

func (r *fakeVenueRepo) Create(_ context.Context, venue *domain.Venue) error {
	r.byID[venue.ID] = venue
	return nil
}

func (r *fakeVenueRepo) Update(_ context.Context, venue *domain.Venue) error {
	if _, ok := r.byID[venue.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[venue.ID] = venue
	return nil
}

func (r *fakeVenueRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id string) (*domain.Venue, error) {
	venue, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return venue, nil
}

func (r *fakeVenueRepo) List(_ context.Context, _ repository.VenueFilter) ([]domain.Venue, error) {
	var result []domain.Venue
	for _, venue := range r.byID {
		result = append(result, *venue)
	}
	return result, nil
}

type fakePackageRepo struct {
	byID map[string]*domain.Package
}

func newFakePackageRepo(packages ...*domain.Package) *fakePackageRepo {
	repo := &fakePackageRepo{byID: make(map[string]*domain.Package)}
	for _, pkg := range packages {
		repo.byID[pkg.ID] = pkg
	}
	return repo
}

func (r *fakePackageRepo) Create(_ context.Context, pkg *domain.Package) error {
	r.byID[pkg.ID] = pkg
	return nil
}

func (r *fakePackageRepo) Update(_ context.Context, pkg *domain.Package) error {
	if _, ok := r.byID[pkg.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[pkg.ID] = pkg
	return nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakePackageRepo) GetByID(_ context.Context, id string) (*domain.Package, error) {
	pkg, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return pkg, nil
}

func (r *fakePackageRepo) List(_ context.Context, _ bool) ([]domain.Package, error) {
	var result []domain.Package
	for _, pkg := range r.byID {
		result = append(result, *pkg)
	}
	return result, nil
}

type fakeVendorRepo struct {
	byID map[string]*domain.Vendor
}

func newFakeVendorRepo(vendors ...*domain.Vendor) *fakeVendorRepo {
	repo := &fakeVendorRepo{byID: make(map[string]*domain.Vendor)}
	for _, vendor := range vendors {
		repo.byID[vendor.ID] = vendor
	}
	return repo
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	r.byID[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *domain.Vendor) error {
	if _, ok := r.byID[vendor.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	vendor, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return vendor, nil
}

func (r *fakeVendorRepo) List(_ context.Context, availableOnly bool) ([]domain.Vendor, error) {
	var result []domain.Vendor
	for _, vendor := range r.byID {
		if availableOnly && !vendor.Available {
			continue
		}
		result = append(result, *vendor)
	}
	return result, nil
}

type fakeEventVendorRepo struct {
	details []repository.EventVendorDetail
}

func (r *fakeEventVendorRepo) Create(_ context.Context, assignment *domain.EventVendor) error {
	assignment.ID = fmt.Sprintf("ev-%d", len(r.details)+1)
	assignment.BookedAt = time.Now()
	r.details = append(r.details, repository.EventVendorDetail{Assignment: *assignment})
	return nil
}

func (r *fakeEventVendorRepo) Delete(_ context.Context, eventID, vendorID string) error {
	for i, detail := range r.details {
		if detail.Assignment.EventID == eventID && detail.Assignment.VendorID == vendorID {
			r.details = append(r.details[:i], r.details[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeEventVendorRepo) GetByEventAndVendor(_ context.Context, eventID, vendorID string) (*domain.EventVendor, error) {
	for _, detail := range r.details {
		if detail.Assignment.EventID == eventID && detail.Assignment.VendorID == vendorID {
			assignment := detail.Assignment
			return &assignment, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEventVendorRepo) ListByEvent(_ context.Context, eventID string) ([]repository.EventVendorDetail, error) {
	var result []repository.EventVendorDetail
	for _, detail := range r.details {
		if detail.Assignment.EventID == eventID {
			result = append(result, detail)
		}
	}
	return result, nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	payment.ID = fmt.Sprintf("pay-%d", len(r.payments)+1)
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, payment := range r.payments {
		if payment.EventID == eventID {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (r *fakePaymentRepo) SumPaidByEvent(_ context.Context, eventID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, payment := range r.payments {
		if payment.EventID == eventID && payment.Status == domain.PaymentStatusPaid {
			sum = sum.Add(payment.Amount)
		}
	}
	return sum, nil
}

func (r *fakePaymentRepo) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, payment := range r.payments {
		if payment.Status == domain.PaymentStatusPaid {
			sum = sum.Add(payment.Amount)
		}
	}
	return sum, nil
}
