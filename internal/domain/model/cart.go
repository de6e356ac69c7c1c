// Package model defines the core domain entities for the rate service.
package model

// CartItem is a single line of the shopper's cart as supplied by the host checkout.
// Weight and dimensions are optional; zero means "not set".
//
// @Description Cart line item used to derive the shipping package
type CartItem struct {
	ItemRef       string  `json:"item_ref" example:"sku-123"`
	Quantity      int     `json:"quantity" example:"2"`
	NeedsShipping bool    `json:"needs_shipping" example:"true"`
	Weight        float64 `json:"weight,omitempty" example:"2"`
	Length        float64 `json:"length,omitempty" example:"10"`
	Width         float64 `json:"width,omitempty" example:"10"`
	Height        float64 `json:"height,omitempty" example:"10"`
}

// HasDimensions reports whether all three dimensions are set.
func (i CartItem) HasDimensions() bool {
	return i.Length > 0 && i.Width > 0 && i.Height > 0
}

// Address is a shipping origin or destination.
// Street lines are only sent for destinations.
//
// @Description Postal address
type Address struct {
	PostalCode   string `json:"postal_code" bson:"postal_code" example:"90210"`
	City         string `json:"city,omitempty" bson:"city,omitempty" example:"Beverly Hills"`
	State        string `json:"state,omitempty" bson:"state,omitempty" example:"CA"`
	Country      string `json:"country" bson:"country" example:"US"`
	AddressLine1 string `json:"address_1,omitempty" bson:"address_1,omitempty"`
	AddressLine2 string `json:"address_2,omitempty" bson:"address_2,omitempty"`
}

// PackageDescriptor is the single box the cart is quoted as.
// Weight is in pounds, dimensions in inches.
//
// @Description Derived shipping package (pounds / inches)
type PackageDescriptor struct {
	Weight float64 `json:"weight" example:"8.82"`
	Length float64 `json:"length" example:"3.94"`
	Width  float64 `json:"width" example:"3.94"`
	Height float64 `json:"height" example:"3.94"`
}
