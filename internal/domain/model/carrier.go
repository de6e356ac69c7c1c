package model

import "strings"

// Carrier is one of the two shipping companies quoted through the provider.
type Carrier struct {
	// Name is the display name, e.g. "USPS".
	Name string `json:"name"`
	// Code is the provider-side carrier code.
	Code string `json:"code"`
	// ServicePrefix is the prefix shared by all service codes of this carrier.
	ServicePrefix string `json:"service_prefix"`
	// Services maps known service codes to their default names.
	Services []ServiceInfo `json:"services"`
}

// ServiceInfo describes a known carrier service.
type ServiceInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	// USPS is the postal carrier, quoted through the stamps.com account.
	USPS = Carrier{
		Name:          "USPS",
		Code:          "stamps_com",
		ServicePrefix: "usps_",
		Services: []ServiceInfo{
			{Code: "usps_priority_mail", Name: "Priority Mail"},
			{Code: "usps_first_class_mail", Name: "First Class Mail"},
			{Code: "usps_priority_mail_express", Name: "Priority Mail Express"},
			{Code: "usps_media_mail", Name: "Media Mail"},
			{Code: "usps_parcel_select", Name: "Parcel Select Ground"},
		},
	}

	// UPS is the parcel carrier.
	UPS = Carrier{
		Name:          "UPS",
		Code:          "ups_walleted",
		ServicePrefix: "ups_",
		Services: []ServiceInfo{
			{Code: "ups_ground", Name: "Ground"},
			{Code: "ups_3_day_select", Name: "3 Day Select"},
			{Code: "ups_2nd_day_air", Name: "2nd Day Air"},
			{Code: "ups_2nd_day_air_am", Name: "2nd Day Air AM"},
			{Code: "ups_next_day_air_saver", Name: "Next Day Air Saver"},
			{Code: "ups_next_day_air", Name: "Next Day Air"},
			{Code: "ups_next_day_air_early_am", Name: "Next Day Air Early AM"},
		},
	}
)

// Carriers returns the supported carriers in fetch order.
// USPS is always queried before UPS.
func Carriers() []Carrier {
	return []Carrier{USPS, UPS}
}

// CarrierByName looks a carrier up by display name or carrier code, case-insensitively.
func CarrierByName(name string) (Carrier, bool) {
	for _, c := range Carriers() {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Code, name) {
			return c, true
		}
	}
	return Carrier{}, false
}

// Owns reports whether serviceCode belongs to this carrier.
func (c Carrier) Owns(serviceCode string) bool {
	return strings.HasPrefix(serviceCode, c.ServicePrefix)
}
