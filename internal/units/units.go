// Package units converts store measurement units into the pounds and inches
// the rate provider expects.
package units

import (
	"fmt"
	"math"
	"strings"
)

// WeightUnit identifies the unit a weight value is expressed in.
type WeightUnit string

// DimensionUnit identifies the unit a length value is expressed in.
type DimensionUnit string

// Supported weight units.
const (
	Kilograms WeightUnit = "kg"
	Grams     WeightUnit = "g"
	Pounds    WeightUnit = "lbs"
	Ounces    WeightUnit = "oz"
)

// Supported dimension units.
const (
	Centimeters DimensionUnit = "cm"
	Meters      DimensionUnit = "m"
	Millimeters DimensionUnit = "mm"
	Inches      DimensionUnit = "in"
	Yards       DimensionUnit = "yd"
)

const (
	kilogramsPerPound        = 0.453592
	kilogramsPerOunce        = 0.0283495
	centimetersPerInch       = 2.54
	centimetersPerYard       = 91.44
	centimetersPerMeter      = 100
	centimetersPerMillimeter = 0.1
)

// ToPounds converts value from unit into pounds.
// Unknown units are treated as pounds.
func ToPounds(value float64, unit WeightUnit) float64 {
	var kg float64
	switch unit {
	case Kilograms:
		kg = value
	case Grams:
		kg = value / 1000
	case Ounces:
		kg = value * kilogramsPerOunce
	default:
		return value
	}
	return kg / kilogramsPerPound
}

// ToInches converts value from unit into inches.
// Unknown units are treated as inches.
func ToInches(value float64, unit DimensionUnit) float64 {
	var cm float64
	switch unit {
	case Centimeters:
		cm = value
	case Meters:
		cm = value * centimetersPerMeter
	case Millimeters:
		cm = value * centimetersPerMillimeter
	case Yards:
		cm = value * centimetersPerYard
	default:
		return value
	}
	return cm / centimetersPerInch
}

// ParseWeightUnit parses a weight unit name. "lb" is accepted for pounds.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch u := WeightUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Kilograms, Grams, Pounds, Ounces:
		return u, nil
	case "lb":
		return Pounds, nil
	default:
		return "", fmt.Errorf("unknown weight unit %q", s)
	}
}

// ParseDimensionUnit parses a dimension unit name.
func ParseDimensionUnit(s string) (DimensionUnit, error) {
	switch u := DimensionUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Centimeters, Meters, Millimeters, Inches, Yards:
		return u, nil
	default:
		return "", fmt.Errorf("unknown dimension unit %q", s)
	}
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
