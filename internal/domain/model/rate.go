package model

// RawRate is one line of a provider rate response.
type RawRate struct {
	ServiceCode  string  `json:"service_code"`
	ServiceName  string  `json:"service_name"`
	ShipmentCost float64 `json:"shipment_cost"`
	OtherCost    float64 `json:"other_cost"`
}

// TotalCost is what the provider bills for this line.
func (r RawRate) TotalCost() float64 {
	return r.ShipmentCost + r.OtherCost
}

// RateMetadata carries the provider details behind a quoted rate.
type RateMetadata struct {
	Carrier      string  `json:"carrier" example:"USPS"`
	ServiceCode  string  `json:"service_code" example:"usps_priority_mail"`
	OriginalName string  `json:"original_name" example:"Priority Mail"`
	ShipmentCost float64 `json:"shipment_cost" example:"8"`
	OtherCost    float64 `json:"other_cost" example:"1.5"`
}

// QuotedRate is a shipping option offered to the shopper.
//
// @Description Priced shipping option
type QuotedRate struct {
	ID       string       `json:"id" example:"hp_ss_usps_priority_mail"`
	Label    string       `json:"label" example:"Fast Mail"`
	Cost     float64      `json:"cost" example:"9.5"`
	Metadata RateMetadata `json:"metadata"`
}

// RateQuery is one checkout calculation request.
type RateQuery struct {
	Destination   Address
	Items         []CartItem
	WeightUnit    string
	DimensionUnit string
}

// Source tells where the rates of a calculation came from.
type Source string

const (
	// SourceProvider means the rates were fetched from the provider.
	SourceProvider Source = "provider"
	// SourceCache means the rates were replayed from the session cache.
	SourceCache Source = "cache"
	// SourceLocked means another calculation for the same session is in flight.
	SourceLocked Source = "locked"
	// SourceSkipped means a precondition failed and nothing was fetched.
	SourceSkipped Source = "skipped"
)

// Outcome values reported with a calculation result.
const (
	OutcomeOK                 = "ok"
	OutcomeNoRates            = "no_rates"
	OutcomeNoCredentials      = "no_credentials"
	OutcomeInvalidDestination = "invalid_destination"
	OutcomeInFlight           = "in_flight"
)

// CarrierError records a carrier whose fetch failed during a calculation.
type CarrierError struct {
	Carrier string `json:"carrier"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RateResult is the outcome of one calculation. Rates is never nil.
type RateResult struct {
	Rates         []QuotedRate       `json:"rates"`
	Source        Source             `json:"source"`
	Outcome       string             `json:"outcome"`
	CarrierErrors []CarrierError     `json:"carrier_errors,omitempty"`
	Package       *PackageDescriptor `json:"package,omitempty"`
}
