package service

import (
	"math"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/units"
)

// Built-in package defaults in inches and pounds.
const (
	DefaultPackageLength = 12.0
	DefaultPackageWidth  = 12.0
	DefaultPackageHeight = 12.0
	DefaultPackageWeight = 1.0

	minPackageWeight    = 0.1
	minPackageDimension = 1.0
)

// PackageDefaults are the administrator's fallback dimensions (in) and weight (lb).
type PackageDefaults struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
}

// DefaultsFromSettings reads package defaults from settings. Values that are
// not positive fall back to the built-in 12x12x12 in, 1 lb box.
func DefaultsFromSettings(s model.Settings) PackageDefaults {
	return PackageDefaults{
		Length: positiveOr(s.DefaultLength, DefaultPackageLength),
		Width:  positiveOr(s.DefaultWidth, DefaultPackageWidth),
		Height: positiveOr(s.DefaultHeight, DefaultPackageHeight),
		Weight: positiveOr(s.DefaultWeight, DefaultPackageWeight),
	}
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// PackageBuilder derives the single box a cart is quoted as.
type PackageBuilder struct {
	defaults PackageDefaults
}

// NewPackageBuilder creates a PackageBuilder. Non-positive defaults are replaced
// by the built-ins.
func NewPackageBuilder(defaults PackageDefaults) *PackageBuilder {
	return &PackageBuilder{defaults: PackageDefaults{
		Length: positiveOr(defaults.Length, DefaultPackageLength),
		Width:  positiveOr(defaults.Width, DefaultPackageWidth),
		Height: positiveOr(defaults.Height, DefaultPackageHeight),
		Weight: positiveOr(defaults.Weight, DefaultPackageWeight),
	}}
}

// Build sums item weights times quantity and takes the largest length, width
// and height seen independently, assuming everything fits in a box bounded by
// the biggest item. Weight and dimensions fall back to the defaults
// separately. Build never fails.
func (b *PackageBuilder) Build(items []model.CartItem, weightUnit units.WeightUnit, dimUnit units.DimensionUnit) model.PackageDescriptor {
	var totalWeight, maxLength, maxWidth, maxHeight float64
	hasDimensions := false

	for _, item := range items {
		if !item.NeedsShipping {
			continue
		}

		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		if item.Weight > 0 {
			totalWeight += units.ToPounds(item.Weight, weightUnit) * float64(qty)
		}

		if item.HasDimensions() {
			hasDimensions = true
			maxLength = math.Max(maxLength, units.ToInches(item.Length, dimUnit))
			maxWidth = math.Max(maxWidth, units.ToInches(item.Width, dimUnit))
			maxHeight = math.Max(maxHeight, units.ToInches(item.Height, dimUnit))
		}
	}

	if totalWeight <= 0 {
		totalWeight = b.defaults.Weight
	}
	if !hasDimensions {
		maxLength = b.defaults.Length
		maxWidth = b.defaults.Width
		maxHeight = b.defaults.Height
	}

	return model.PackageDescriptor{
		Weight: math.Max(minPackageWeight, units.Round2(totalWeight)),
		Length: math.Max(minPackageDimension, units.Round2(maxLength)),
		Width:  math.Max(minPackageDimension, units.Round2(maxWidth)),
		Height: math.Max(minPackageDimension, units.Round2(maxHeight)),
	}
}
