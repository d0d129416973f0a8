package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/service"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// CatalogHandler serves venue, package and vendor catalogs.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListVenues GET /venues. Clients see available venues, optionally filtered
// by their guest count.
func (h *CatalogHandler) ListVenues(c *fiber.Ctx) error {
	filter := repository.VenueFilter{AvailableOnly: true}
	if guests := c.QueryInt("guests", 0); guests > 0 {
		filter.MinCapacity = &guests
	}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}

	venues, err := h.service.ListVenues(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": venueResponses(venues)})
}

// GetVenue GET /venues/:id.
func (h *CatalogHandler) GetVenue(c *fiber.Ctx) error {
	venue, err := h.service.GetVenue(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVenueResponse(venue)})
}

// ListPackages GET /packages.
func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.service.ListPackages(c.Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": packageResponses(packages)})
}

// ListVendors GET /vendors.
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	vendors, err := h.service.ListVendorCatalog(c.Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": vendorResponses(vendors)})
}

// AdminListVenues GET /admin/venues includes unavailable entries.
func (h *CatalogHandler) AdminListVenues(c *fiber.Ctx) error {
	venues, err := h.service.ListVenues(c.Context(), repository.VenueFilter{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": venueResponses(venues)})
}

// CreateVenue POST /admin/venues.
func (h *CatalogHandler) CreateVenue(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	venue, err := h.service.CreateVenue(c.Context(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewVenueResponse(venue)})
}

// UpdateVenue PUT /admin/venues/:id.
func (h *CatalogHandler) UpdateVenue(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	venue, err := h.service.UpdateVenue(c.Context(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVenueResponse(venue)})
}

// DeleteVenue DELETE /admin/venues/:id.
func (h *CatalogHandler) DeleteVenue(c *fiber.Ctx) error {
	if err := h.service.DeleteVenue(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminListPackages GET /admin/packages includes inactive entries.
func (h *CatalogHandler) AdminListPackages(c *fiber.Ctx) error {
	packages, err := h.service.ListPackages(c.Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": packageResponses(packages)})
}

// CreatePackage POST /admin/packages.
func (h *CatalogHandler) CreatePackage(c *fiber.Ctx) error {
	var req dto.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pkg, err := h.service.CreatePackage(c.Context(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewPackageResponse(pkg)})
}

// UpdatePackage PUT /admin/packages/:id.
func (h *CatalogHandler) UpdatePackage(c *fiber.Ctx) error {
	var req dto.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pkg, err := h.service.UpdatePackage(c.Context(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPackageResponse(pkg)})
}

// DeletePackage DELETE /admin/packages/:id.
func (h *CatalogHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.service.DeletePackage(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminListVendors GET /admin/vendors includes unavailable entries.
func (h *CatalogHandler) AdminListVendors(c *fiber.Ctx) error {
	vendors, err := h.service.ListVendorCatalog(c.Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": vendorResponses(vendors)})
}

// CreateVendor POST /admin/vendors.
func (h *CatalogHandler) CreateVendor(c *fiber.Ctx) error {
	var req dto.VendorCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	vendor, err := h.service.CreateVendor(c.Context(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewVendorResponse(vendor)})
}

// UpdateVendor PUT /admin/vendors/:id.
func (h *CatalogHandler) UpdateVendor(c *fiber.Ctx) error {
	var req dto.VendorCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	vendor, err := h.service.UpdateVendor(c.Context(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVendorResponse(vendor)})
}

// DeleteVendor DELETE /admin/vendors/:id.
func (h *CatalogHandler) DeleteVendor(c *fiber.Ctx) error {
	if err := h.service.DeleteVendor(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func venueResponses(venues []domain.Venue) []dto.VenueResponse {
	responses := make([]dto.VenueResponse, 0, len(venues))
	for i := range venues {
		responses = append(responses, dto.NewVenueResponse(&venues[i]))
	}
	return responses
}

func packageResponses(packages []domain.Package) []dto.PackageResponse {
	responses := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		responses = append(responses, dto.NewPackageResponse(&packages[i]))
	}
	return responses
}

func vendorResponses(vendors []domain.Vendor) []dto.VendorResponse {
	responses := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		responses = append(responses, dto.NewVendorResponse(&vendors[i]))
	}
	return responses
}
