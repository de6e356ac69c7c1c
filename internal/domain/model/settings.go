package model

// ServiceConfigEntry is the administrator's choice for one service code.
type ServiceConfigEntry struct {
	Enabled bool `json:"enabled" bson:"enabled"`
	// DisplayName replaces the provider's service name when not empty.
	DisplayName string `json:"name" bson:"name"`
}

// Settings is the administrator configuration the rate pipeline reads.
type Settings struct {
	APIKey       string `json:"api_key" bson:"api_key"`
	APISecret    string `json:"api_secret" bson:"api_secret"`
	DebugEnabled bool   `json:"debug_enabled" bson:"debug_enabled"`

	DefaultLength float64 `json:"default_length" bson:"default_length"`
	DefaultWidth  float64 `json:"default_width" bson:"default_width"`
	DefaultHeight float64 `json:"default_height" bson:"default_height"`
	DefaultWeight float64 `json:"default_weight" bson:"default_weight"`

	// WeightUnit and DimensionUnit are the store's catalog units.
	WeightUnit    string `json:"weight_unit" bson:"weight_unit"`
	DimensionUnit string `json:"dimension_unit" bson:"dimension_unit"`

	ServiceConfig map[string]ServiceConfigEntry `json:"service_config" bson:"service_config"`

	// USPSServices and UPSServices are the legacy flat lists of enabled codes.
	USPSServices []string `json:"usps_services" bson:"usps_services"`
	UPSServices  []string `json:"ups_services" bson:"ups_services"`

	DisableUSPS bool `json:"disable_usps" bson:"disable_usps"`
	DisableUPS  bool `json:"disable_ups" bson:"disable_ups"`

	// Origin is the store's ship-from address.
	Origin Address `json:"origin" bson:"origin"`
}

// HasCredentials reports whether both halves of the API credential pair are set.
func (s Settings) HasCredentials() bool {
	return s.APIKey != "" && s.APISecret != ""
}

// LegacyServices returns the legacy enabled-code list for carrier.
func (s Settings) LegacyServices(carrier Carrier) []string {
	switch carrier.Code {
	case USPS.Code:
		return s.USPSServices
	case UPS.Code:
		return s.UPSServices
	default:
		return nil
	}
}

// CarrierDisabled reports whether the administrator switched carrier off.
func (s Settings) CarrierDisabled(carrier Carrier) bool {
	switch carrier.Code {
	case USPS.Code:
		return s.DisableUSPS
	case UPS.Code:
		return s.DisableUPS
	default:
		return true
	}
}

// CarrierActive reports whether carrier should be queried: it is not disabled and
// has at least one enabled structured entry or a non-empty legacy list.
func (s Settings) CarrierActive(carrier Carrier) bool {
	if s.CarrierDisabled(carrier) {
		return false
	}
	if len(s.LegacyServices(carrier)) > 0 {
		return true
	}
	for code, entry := range s.ServiceConfig {
		if entry.Enabled && carrier.Owns(code) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate maps and slices safely.
func (s Settings) Clone() Settings {
	out := s
	if s.ServiceConfig != nil {
		out.ServiceConfig = make(map[string]ServiceConfigEntry, len(s.ServiceConfig))
		for k, v := range s.ServiceConfig {
			out.ServiceConfig[k] = v
		}
	}
	out.USPSServices = append([]string(nil), s.USPSServices...)
	out.UPSServices = append([]string(nil), s.UPSServices...)
	return out
}
