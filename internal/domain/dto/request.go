// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// AddressRequest is a destination address as sent by the checkout.
//
// @Description Shipping destination
type AddressRequest struct {
	PostalCode   string `json:"postal_code" example:"90210"`
	City         string `json:"city" example:"Beverly Hills"`
	State        string `json:"state" example:"CA"`
	Country      string `json:"country" example:"US"`
	AddressLine1 string `json:"address_1"`
	AddressLine2 string `json:"address_2"`
} // @name AddressRequest

// CartItemRequest is one cart line. NeedsShipping defaults to true when omitted.
//
// @Description Cart line item
type CartItemRequest struct {
	ItemRef       string  `json:"item_ref" example:"sku-123"`
	Quantity      int     `json:"quantity" example:"2"`
	NeedsShipping *bool   `json:"needs_shipping,omitempty" example:"true"`
	Weight        float64 `json:"weight" example:"2"`
	Length        float64 `json:"length" example:"10"`
	Width         float64 `json:"width" example:"10"`
	Height        float64 `json:"height" example:"10"`
} // @name CartItemRequest

// CalculateRatesRequest represents the JSON request body for the rates endpoint.
//
// Missing destination fields are not a request error: the calculation simply
// returns no rates. Only negative quantities or measurements are rejected.
//
// @Description Request to quote shipping rates for a cart
type CalculateRatesRequest struct {
	Destination AddressRequest    `json:"destination"`
	Items       []CartItemRequest `json:"items"`
	// WeightUnit and DimensionUnit override the store's catalog units.
	WeightUnit    string `json:"weight_unit,omitempty" example:"kg"`
	DimensionUnit string `json:"dimension_unit,omitempty" example:"cm"`
} // @name CalculateRatesRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
func (r *CalculateRatesRequest) Validate() error {
	for i, item := range r.Items {
		if item.Quantity < 0 {
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must not be negative"}
		}
		if item.Weight < 0 || item.Length < 0 || item.Width < 0 || item.Height < 0 {
			return &ValidationError{Field: fmt.Sprintf("items[%d]", i), Message: "weight and dimensions must not be negative"}
		}
	}
	return nil
}

// ToQuery converts the request into a domain rate query.
func (r *CalculateRatesRequest) ToQuery() model.RateQuery {
	items := make([]model.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		needsShipping := true
		if it.NeedsShipping != nil {
			needsShipping = *it.NeedsShipping
		}
		items = append(items, model.CartItem{
			ItemRef:       it.ItemRef,
			Quantity:      it.Quantity,
			NeedsShipping: needsShipping,
			Weight:        it.Weight,
			Length:        it.Length,
			Width:         it.Width,
			Height:        it.Height,
		})
	}

	return model.RateQuery{
		Destination: model.Address{
			PostalCode:   r.Destination.PostalCode,
			City:         r.Destination.City,
			State:        r.Destination.State,
			Country:      r.Destination.Country,
			AddressLine1: r.Destination.AddressLine1,
			AddressLine2: r.Destination.AddressLine2,
		},
		Items:         items,
		WeightUnit:    r.WeightUnit,
		DimensionUnit: r.DimensionUnit,
	}
}

// TestCredentialsRequest carries the API key pair to verify. Empty or masked
// values fall back to the stored credentials.
//
// @Description Credentials to test against the provider
type TestCredentialsRequest struct {
	APIKey    string `json:"api_key" example:"a1b2c3"`
	APISecret string `json:"api_secret" example:"d4e5f6"`
} // @name TestCredentialsRequest

// SettingsPayload is the administrator settings document as exchanged over
// the admin API. Secrets are masked on the way out.
//
// @Description Administrator settings
type SettingsPayload struct {
	APIKey        string                              `json:"api_key" example:"****1234"`
	APISecret     string                              `json:"api_secret" example:"****5678"`
	DebugEnabled  bool                                `json:"debug_enabled"`
	DefaultLength float64                             `json:"default_length" example:"12"`
	DefaultWidth  float64                             `json:"default_width" example:"12"`
	DefaultHeight float64                             `json:"default_height" example:"12"`
	DefaultWeight float64                             `json:"default_weight" example:"1"`
	WeightUnit    string                              `json:"weight_unit" example:"lbs"`
	DimensionUnit string                              `json:"dimension_unit" example:"in"`
	ServiceConfig map[string]model.ServiceConfigEntry `json:"service_config"`
	USPSServices  []string                            `json:"usps_services"`
	UPSServices   []string                            `json:"ups_services"`
	DisableUSPS   bool                                `json:"disable_usps"`
	DisableUPS    bool                                `json:"disable_ups"`
	Origin        AddressRequest                      `json:"origin"`
} // @name SettingsPayload

// ToSettings converts the payload into domain settings.
func (p SettingsPayload) ToSettings() model.Settings {
	return model.Settings{
		APIKey:        p.APIKey,
		APISecret:     p.APISecret,
		DebugEnabled:  p.DebugEnabled,
		DefaultLength: p.DefaultLength,
		DefaultWidth:  p.DefaultWidth,
		DefaultHeight: p.DefaultHeight,
		DefaultWeight: p.DefaultWeight,
		WeightUnit:    p.WeightUnit,
		DimensionUnit: p.DimensionUnit,
		ServiceConfig: p.ServiceConfig,
		USPSServices:  p.USPSServices,
		UPSServices:   p.UPSServices,
		DisableUSPS:   p.DisableUSPS,
		DisableUPS:    p.DisableUPS,
		Origin: model.Address{
			PostalCode: p.Origin.PostalCode,
			City:       p.Origin.City,
			State:      p.Origin.State,
			Country:    p.Origin.Country,
		},
	}
}

// NewSettingsPayload converts domain settings into the admin payload.
// Callers mask the credentials first.
func NewSettingsPayload(s model.Settings) SettingsPayload {
	return SettingsPayload{
		APIKey:        s.APIKey,
		APISecret:     s.APISecret,
		DebugEnabled:  s.DebugEnabled,
		DefaultLength: s.DefaultLength,
		DefaultWidth:  s.DefaultWidth,
		DefaultHeight: s.DefaultHeight,
		DefaultWeight: s.DefaultWeight,
		WeightUnit:    s.WeightUnit,
		DimensionUnit: s.DimensionUnit,
		ServiceConfig: s.ServiceConfig,
		USPSServices:  s.USPSServices,
		UPSServices:   s.UPSServices,
		DisableUSPS:   s.DisableUSPS,
		DisableUPS:    s.DisableUPS,
		Origin: AddressRequest{
			PostalCode: s.Origin.PostalCode,
			City:       s.Origin.City,
			State:      s.Origin.State,
			Country:    s.Origin.Country,
		},
	}
}

// UpdateSettingsRequest replaces the settings document.
//
// @Description Settings update
type UpdateSettingsRequest struct {
	Settings SettingsPayload `json:"settings"`
	// UpdatedBy identifies the administrator making the change.
	UpdatedBy string `json:"updated_by,omitempty" example:"ops@example.com"`
} // @name UpdateSettingsRequest

// DiscoverServicesRequest names the carrier to probe.
//
// @Description Service discovery request
type DiscoverServicesRequest struct {
	Carrier   string `json:"carrier" binding:"required" example:"USPS"`
	UpdatedBy string `json:"updated_by,omitempty" example:"ops@example.com"`
} // @name DiscoverServicesRequest
