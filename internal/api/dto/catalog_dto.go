package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/service"
)

// VenueRequest payload for catalog maintenance.
type VenueRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	City        string          `json:"city"`
	Capacity    int             `json:"capacity"`
	BaseRent    decimal.Decimal `json:"base_rent"`
	Available   bool            `json:"available"`
	Rating      float64         `json:"rating"`
}

// ToInput converts the request to the service input.
func (r VenueRequest) ToInput() service.VenueInput {
	return service.VenueInput{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		City:        r.City,
		Capacity:    r.Capacity,
		BaseRent:    r.BaseRent,
		Available:   r.Available,
		Rating:      r.Rating,
	}
}

// VenueResponse mirrors a catalog venue.
type VenueResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	City        string  `json:"city"`
	Capacity    int     `json:"capacity"`
	BaseRent    string  `json:"base_rent"`
	Available   bool    `json:"available"`
	Rating      float64 `json:"rating"`
}

// NewVenueResponse maps the domain venue.
func NewVenueResponse(venue *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID,
		Name:        venue.Name,
		Description: venue.Description,
		Location:    venue.Location,
		City:        venue.City,
		Capacity:    venue.Capacity,
		BaseRent:    venue.BaseRent.StringFixed(2),
		Available:   venue.Available,
		Rating:      venue.Rating,
	}
}

// PackageRequest payload for catalog maintenance.
type PackageRequest struct {
	Name          string          `json:"name"`
	PackageType   string          `json:"package_type"`
	Description   string          `json:"description"`
	BasePrice     decimal.Decimal `json:"base_price"`
	PricePerGuest decimal.Decimal `json:"price_per_guest"`
	MaxGuests     *int            `json:"max_guests"`
	Active        bool            `json:"active"`
}

// ToInput converts the request to the service input.
func (r PackageRequest) ToInput() service.PackageInput {
	return service.PackageInput{
		Name:          r.Name,
		PackageType:   r.PackageType,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		PricePerGuest: r.PricePerGuest,
		MaxGuests:     r.MaxGuests,
		Active:        r.Active,
	}
}

// PackageResponse mirrors a catalog package.
type PackageResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PackageType   string `json:"package_type"`
	Description   string `json:"description"`
	BasePrice     string `json:"base_price"`
	PricePerGuest string `json:"price_per_guest"`
	MaxGuests     *int   `json:"max_guests"`
	Active        bool   `json:"active"`
}

// NewPackageResponse maps the domain package.
func NewPackageResponse(pkg *domain.Package) PackageResponse {
	return PackageResponse{
		ID:            pkg.ID,
		Name:          pkg.Name,
		PackageType:   pkg.PackageType,
		Description:   pkg.Description,
		BasePrice:     pkg.BasePrice.StringFixed(2),
		PricePerGuest: pkg.PricePerGuest.StringFixed(2),
		MaxGuests:     pkg.MaxGuests,
		Active:        pkg.Active,
	}
}

// VendorCatalogRequest payload for catalog maintenance.
type VendorCatalogRequest struct {
	Name          string          `json:"name"`
	VendorType    string          `json:"vendor_type"`
	Description   string          `json:"description"`
	BasePrice     decimal.Decimal `json:"base_price"`
	ContactPerson string          `json:"contact_person"`
	ContactPhone  string          `json:"contact_phone"`
	ContactEmail  string          `json:"contact_email"`
	Available     bool            `json:"available"`
}

// ToInput converts the request to the service input.
func (r VendorCatalogRequest) ToInput() service.VendorCatalogInput {
	return service.VendorCatalogInput{
		Name:          r.Name,
		VendorType:    r.VendorType,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		ContactEmail:  r.ContactEmail,
		Available:     r.Available,
	}
}
