package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

func TestServicePolicy_Apply(t *testing.T) {
	raw := []model.RawRate{
		{ServiceCode: "usps_priority_mail", ServiceName: "Priority Mail", ShipmentCost: 8, OtherCost: 1.5},
		{ServiceCode: "usps_media_mail", ServiceName: "Media Mail", ShipmentCost: 4},
		{ServiceCode: "usps_first_class_mail", ServiceName: "First Class Mail", ShipmentCost: 3.25, OtherCost: 0.25},
	}

	tests := []struct {
		name     string
		settings model.Settings
		expected []string
		labels   []string
	}{
		{
			name: "structured config with custom and empty names",
			settings: model.Settings{ServiceConfig: map[string]model.ServiceConfigEntry{
				"usps_priority_mail":    {Enabled: true, DisplayName: "Fast Mail"},
				"usps_first_class_mail": {Enabled: true},
				"usps_media_mail":       {Enabled: false, DisplayName: "Books"},
			}},
			expected: []string{"usps_priority_mail", "usps_first_class_mail"},
			labels:   []string{"Fast Mail", "First Class Mail"},
		},
		{
			name: "structured disabled wins over legacy list",
			settings: model.Settings{
				ServiceConfig: map[string]model.ServiceConfigEntry{
					"usps_media_mail": {Enabled: false},
				},
				USPSServices: []string{"usps_media_mail", "usps_priority_mail"},
			},
			expected: []string{"usps_priority_mail"},
			labels:   []string{"Priority Mail"},
		},
		{
			name: "legacy list uses provider names",
			settings: model.Settings{
				USPSServices: []string{"usps_media_mail"},
			},
			expected: []string{"usps_media_mail"},
			labels:   []string{"Media Mail"},
		},
		{
			name: "legacy list of the other carrier is ignored",
			settings: model.Settings{
				UPSServices: []string{"usps_media_mail"},
			},
			expected: []string{},
			labels:   []string{},
		},
		{
			name:     "nothing configured excludes everything",
			settings: model.Settings{},
			expected: []string{},
			labels:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServicePolicy{}.Apply(model.USPS, raw, tt.settings)

			codes := make([]string, 0, len(got))
			labels := make([]string, 0, len(got))
			for _, q := range got {
				codes = append(codes, q.Metadata.ServiceCode)
				labels = append(labels, q.Label)
			}
			assert.Equal(t, tt.expected, codes)
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestServicePolicy_CostAndMetadata(t *testing.T) {
	raw := []model.RawRate{
		{ServiceCode: "ups_ground", ServiceName: "UPS Ground", ShipmentCost: 10.1, OtherCost: 2.2},
		{ServiceCode: "ups_next_day_air", ServiceName: "UPS Next Day Air", ShipmentCost: 30},
	}
	settings := model.Settings{UPSServices: []string{"ups_ground", "ups_next_day_air"}}

	got := ServicePolicy{}.Apply(model.UPS, raw, settings)

	assert.Len(t, got, 2)
	for i, q := range got {
		assert.InDelta(t, raw[i].ShipmentCost+raw[i].OtherCost, q.Cost, 1e-9)
	}
	assert.Equal(t, model.QuotedRate{
		ID:    "hp_ss_ups_ground",
		Label: "UPS Ground",
		Cost:  got[0].Cost,
		Metadata: model.RateMetadata{
			Carrier:      "UPS",
			ServiceCode:  "ups_ground",
			OriginalName: "UPS Ground",
			ShipmentCost: 10.1,
			OtherCost:    2.2,
		},
	}, got[0])
}

func TestResolverChain_Order(t *testing.T) {
	settings := model.Settings{
		ServiceConfig: map[string]model.ServiceConfigEntry{"ups_ground": {Enabled: true, DisplayName: "Ground"}},
		UPSServices:   []string{"ups_ground", "ups_3_day_select"},
	}
	chain := ResolverChain(model.UPS, settings)

	assert.Equal(t, Resolution{Enabled: true, Label: "Ground"}, Resolve(chain, "ups_ground"))
	assert.Equal(t, Resolution{Enabled: true}, Resolve(chain, "ups_3_day_select"))
	assert.Equal(t, Resolution{Enabled: false}, Resolve(chain, "ups_next_day_air"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "hp_ss_usps_priority_mail", expected: "hp_ss_usps_priority_mail"},
		{in: "HP_SS_UPS_Ground", expected: "hp_ss_ups_ground"},
		{in: "hp_ss_odd code!!here", expected: "hp_ss_odd-code-here"},
		{in: "  spaced  ", expected: "spaced"},
		{in: "a--b", expected: "a--b"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.in))
		})
	}
}
