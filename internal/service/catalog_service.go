package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/validate"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// CatalogService serves the venue, package and vendor catalogs and their
// admin maintenance operations.
type CatalogService struct {
	venues   repository.VenueRepository
	packages repository.PackageRepository
	vendors  repository.VendorRepository
}

// CatalogDependencies bundles requirements for the catalog service.
type CatalogDependencies struct {
	VenueRepo   repository.VenueRepository
	PackageRepo repository.PackageRepository
	VendorRepo  repository.VendorRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		venues:   deps.VenueRepo,
		packages: deps.PackageRepo,
		vendors:  deps.VendorRepo,
	}
}

// VenueInput describes venue create/update payloads.
type VenueInput struct {
	Name        string
	Description string
	Location    string
	City        string
	Capacity    int
	BaseRent    decimal.Decimal
	Available   bool
	Rating      float64
}

// PackageInput describes package create/update payloads.
type PackageInput struct {
	Name          string
	PackageType   string
	Description   string
	BasePrice     decimal.Decimal
	PricePerGuest decimal.Decimal
	MaxGuests     *int
	Active        bool
}

// VendorCatalogInput describes vendor create/update payloads.
type VendorCatalogInput struct {
	Name          string
	VendorType    string
	Description   string
	BasePrice     decimal.Decimal
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
	Available     bool
}

// ListVenues returns venues matching the filter. Client views pass
// AvailableOnly with their guest count as MinCapacity.
func (s *CatalogService) ListVenues(ctx context.Context, filter repository.VenueFilter) ([]domain.Venue, error) {
	venues, err := s.venues.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return venues, nil
}

// GetVenue fetches one venue.
func (s *CatalogService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("venue", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return venue, nil
}

// CreateVenue adds a venue to the catalog.
func (s *CatalogService) CreateVenue(ctx context.Context, input VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}
	venue := &domain.Venue{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		City:        strings.TrimSpace(input.City),
		Capacity:    input.Capacity,
		BaseRent:    input.BaseRent,
		Available:   input.Available,
		Rating:      input.Rating,
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, apperrors.MapError(err)
	}
	return venue, nil
}

// UpdateVenue edits a catalog venue.
func (s *CatalogService) UpdateVenue(ctx context.Context, id string, input VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	venue.Name = strings.TrimSpace(input.Name)
	venue.Description = strings.TrimSpace(input.Description)
	venue.Location = strings.TrimSpace(input.Location)
	venue.City = strings.TrimSpace(input.City)
	venue.Capacity = input.Capacity
	venue.BaseRent = input.BaseRent
	venue.Available = input.Available
	venue.Rating = input.Rating

	if err := s.venues.Update(ctx, venue); err != nil {
		return nil, apperrors.MapError(err)
	}
	return venue, nil
}

// DeleteVenue removes a venue. Events that referenced it keep a null venue.
func (s *CatalogService) DeleteVenue(ctx context.Context, id string) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("venue", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func validateVenueInput(input VenueInput) error {
	fields := validate.Fields{}
	fields.Require("name", input.Name)
	if input.Capacity <= 0 {
		fields["capacity"] = "must be positive"
	}
	if input.BaseRent.IsNegative() {
		fields["base_rent"] = "must not be negative"
	}
	if !fields.Ok() {
		return apperrors.NewValidationError("venue validation failed", fields.Details())
	}
	return nil
}

// ListPackages returns catalog packages; client views see active ones only.
func (s *CatalogService) ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	packages, err := s.packages.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return packages, nil
}

// GetPackage fetches one package.
func (s *CatalogService) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("package", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return pkg, nil
}

// CreatePackage adds a package to the catalog.
func (s *CatalogService) CreatePackage(ctx context.Context, input PackageInput) (*domain.Package, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	pkg := &domain.Package{
		Name:          strings.TrimSpace(input.Name),
		PackageType:   strings.TrimSpace(input.PackageType),
		Description:   strings.TrimSpace(input.Description),
		BasePrice:     input.BasePrice,
		PricePerGuest: input.PricePerGuest,
		MaxGuests:     input.MaxGuests,
		Active:        input.Active,
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pkg, nil
}

// UpdatePackage edits a catalog package.
func (s *CatalogService) UpdatePackage(ctx context.Context, id string, input PackageInput) (*domain.Package, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg.Name = strings.TrimSpace(input.Name)
	pkg.PackageType = strings.TrimSpace(input.PackageType)
	pkg.Description = strings.TrimSpace(input.Description)
	pkg.BasePrice = input.BasePrice
	pkg.PricePerGuest = input.PricePerGuest
	pkg.MaxGuests = input.MaxGuests
	pkg.Active = input.Active

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pkg, nil
}

// DeletePackage removes a package from the catalog.
func (s *CatalogService) DeletePackage(ctx context.Context, id string) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("package", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func validatePackageInput(input PackageInput) error {
	fields := validate.Fields{}
	fields.Require("name", input.Name)
	if input.BasePrice.IsNegative() {
		fields["base_price"] = "must not be negative"
	}
	if input.PricePerGuest.IsNegative() {
		fields["price_per_guest"] = "must not be negative"
	}
	if !fields.Ok() {
		return apperrors.NewValidationError("package validation failed", fields.Details())
	}
	return nil
}

// ListVendorCatalog returns vendors; client views see available ones only.
func (s *CatalogService) ListVendorCatalog(ctx context.Context, availableOnly bool) ([]domain.Vendor, error) {
	vendors, err := s.vendors.List(ctx, availableOnly)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return vendors, nil
}

// CreateVendor adds a vendor to the catalog.
func (s *CatalogService) CreateVendor(ctx context.Context, input VendorCatalogInput) (*domain.Vendor, error) {
	if err := validateVendorInput(input); err != nil {
		return nil, err
	}
	vendor := &domain.Vendor{
		Name:          strings.TrimSpace(input.Name),
		VendorType:    strings.TrimSpace(input.VendorType),
		Description:   strings.TrimSpace(input.Description),
		BasePrice:     input.BasePrice,
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		ContactPhone:  strings.TrimSpace(input.ContactPhone),
		ContactEmail:  strings.TrimSpace(input.ContactEmail),
		Available:     input.Available,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, apperrors.MapError(err)
	}
	return vendor, nil
}

// UpdateVendor edits a catalog vendor.
func (s *CatalogService) UpdateVendor(ctx context.Context, id string, input VendorCatalogInput) (*domain.Vendor, error) {
	if err := validateVendorInput(input); err != nil {
		return nil, err
	}
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, apperrors.MapError(err)
	}

	vendor.Name = strings.TrimSpace(input.Name)
	vendor.VendorType = strings.TrimSpace(input.VendorType)
	vendor.Description = strings.TrimSpace(input.Description)
	vendor.BasePrice = input.BasePrice
	vendor.ContactPerson = strings.TrimSpace(input.ContactPerson)
	vendor.ContactPhone = strings.TrimSpace(input.ContactPhone)
	vendor.ContactEmail = strings.TrimSpace(input.ContactEmail)
	vendor.Available = input.Available

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return nil, apperrors.MapError(err)
	}
	return vendor, nil
}

// DeleteVendor removes a vendor from the catalog.
func (s *CatalogService) DeleteVendor(ctx context.Context, id string) error {
	if err := s.vendors.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("vendor", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func validateVendorInput(input VendorCatalogInput) error {
	fields := validate.Fields{}
	fields.Require("name", input.Name)
	fields.Require("vendor_type", input.VendorType)
	fields.Email("contact_email", input.ContactEmail)
	if input.BasePrice.IsNegative() {
		fields["base_price"] = "must not be negative"
	}
	if !fields.Ok() {
		return apperrors.NewValidationError("vendor validation failed", fields.Details())
	}
	return nil
}
