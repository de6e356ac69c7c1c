package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarriers_Order(t *testing.T) {
	carriers := Carriers()

	assert.Len(t, carriers, 2)
	assert.Equal(t, "stamps_com", carriers[0].Code)
	assert.Equal(t, "ups_walleted", carriers[1].Code)
}

func TestCarrierByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "display name", input: "USPS", expected: "USPS", found: true},
		{name: "lower case", input: "ups", expected: "UPS", found: true},
		{name: "carrier code", input: "stamps_com", expected: "USPS", found: true},
		{name: "unknown", input: "fedex", found: false},
		{name: "empty", input: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier, ok := CarrierByName(tt.input)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, carrier.Name)
		})
	}
}

func TestCarrier_Owns(t *testing.T) {
	assert.True(t, USPS.Owns("usps_media_mail"))
	assert.False(t, USPS.Owns("ups_ground"))
	assert.True(t, UPS.Owns("ups_ground"))
	assert.False(t, UPS.Owns("usps_priority_mail"))
}

func TestCarrier_CatalogCodesCarryPrefix(t *testing.T) {
	for _, carrier := range Carriers() {
		for _, svc := range carrier.Services {
			assert.True(t, carrier.Owns(svc.Code), "%s lists %s", carrier.Name, svc.Code)
			assert.NotEmpty(t, svc.Name)
		}
	}
}
