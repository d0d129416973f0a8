package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/service"
)

// AssignVendorRequest payload for booking a vendor onto an event.
type AssignVendorRequest struct {
	VendorID    string           `json:"vendor_id"`
	Quantity    int              `json:"quantity"`
	CustomPrice *decimal.Decimal `json:"custom_price"`
	Notes       string           `json:"notes"`
}

// ToInput converts the request to the service input.
func (r AssignVendorRequest) ToInput() service.AssignInput {
	return service.AssignInput{
		VendorID:    r.VendorID,
		Quantity:    r.Quantity,
		CustomPrice: r.CustomPrice,
		Notes:       r.Notes,
	}
}

// VendorLineResponse is one booked vendor row with its line total.
type VendorLineResponse struct {
	VendorID    string  `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	VendorType  string  `json:"vendor_type"`
	Quantity    int     `json:"quantity"`
	CustomPrice *string `json:"custom_price"`
	LineTotal   string  `json:"line_total"`
	Notes       string  `json:"notes"`
	Confirmed   bool    `json:"confirmed"`
}

// NewVendorLineResponse maps a service line view.
func NewVendorLineResponse(view service.VendorLineView) VendorLineResponse {
	resp := VendorLineResponse{
		VendorID:   view.Assignment.VendorID,
		VendorName: view.VendorName,
		VendorType: view.VendorType,
		Quantity:   view.Assignment.Quantity,
		LineTotal:  view.LineTotalDisplay,
		Notes:      view.Assignment.Notes,
		Confirmed:  view.Assignment.Confirmed,
	}
	if view.Assignment.CustomPrice != nil {
		price := view.Assignment.CustomPrice.StringFixed(2)
		resp.CustomPrice = &price
	}
	return resp
}

// NewVendorLineResponses maps a slice of line views.
func NewVendorLineResponses(views []service.VendorLineView) []VendorLineResponse {
	responses := make([]VendorLineResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, NewVendorLineResponse(view))
	}
	return responses
}

// VendorResponse mirrors a catalog vendor.
type VendorResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	VendorType    string `json:"vendor_type"`
	Description   string `json:"description"`
	BasePrice     string `json:"base_price"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	Available     bool   `json:"available"`
}

// NewVendorResponse maps the domain vendor.
func NewVendorResponse(vendor *domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:            vendor.ID,
		Name:          vendor.Name,
		VendorType:    vendor.VendorType,
		Description:   vendor.Description,
		BasePrice:     vendor.BasePrice.StringFixed(2),
		ContactPerson: vendor.ContactPerson,
		ContactPhone:  vendor.ContactPhone,
		ContactEmail:  vendor.ContactEmail,
		Available:     vendor.Available,
	}
}
