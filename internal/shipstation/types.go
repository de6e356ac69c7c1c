// Package shipstation is a client for the ShipStation V1 rates API.
package shipstation

import "github.com/guttosm/shiprate-service/internal/domain/model"

// Credentials is the API key/secret pair used for HTTP Basic auth.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Complete reports whether both halves are present.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// RateRequest asks for every service of one carrier for one package.
type RateRequest struct {
	CarrierCode string
	Origin      model.Address
	Destination model.Address
	Package     model.PackageDescriptor
	Credentials Credentials
	// Debug raises request diagnostics to info level.
	Debug bool
}

// Reasons reported by TestCredentials.
const (
	ReasonOK               = "ok"
	ReasonMissingInput     = "missing_input"
	ReasonAuthFailed       = "auth_failed"
	ReasonUnexpectedStatus = "unexpected_status"
	ReasonTransportFailure = "transport_failure"
)

// CredentialCheck is the outcome of a credential test.
type CredentialCheck struct {
	Success      bool
	Reason       string
	StatusCode   int
	CarrierCount int
	// Detail holds the transport error text for ReasonTransportFailure.
	Detail string
}

type weight struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

type dimensions struct {
	Units  string  `json:"units"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type snakeRateOptions struct {
	RateType string `json:"rate_type"`
}

type camelRateOptions struct {
	RateType string `json:"rateType"`
}

// ratesRequest is the getrates body. Both rate option spellings are sent
// because the API has accepted each of them at different times; quick mode
// prices without creating an order on the account.
type ratesRequest struct {
	CarrierCode      string           `json:"carrierCode"`
	ServiceCode      *string          `json:"serviceCode"`
	PackageCode      string           `json:"packageCode"`
	FromPostalCode   string           `json:"fromPostalCode"`
	FromCity         string           `json:"fromCity"`
	FromState        string           `json:"fromState"`
	FromCountry      string           `json:"fromCountry"`
	ToPostalCode     string           `json:"toPostalCode"`
	ToCity           string           `json:"toCity"`
	ToState          string           `json:"toState"`
	ToCountry        string           `json:"toCountry"`
	ToStreet1        string           `json:"toStreet1"`
	ToStreet2        string           `json:"toStreet2"`
	Weight           weight           `json:"weight"`
	Dimensions       dimensions       `json:"dimensions"`
	Confirmation     string           `json:"confirmation"`
	Residential      bool             `json:"residential"`
	SnakeRateOptions snakeRateOptions `json:"rate_options"`
	CamelRateOptions camelRateOptions `json:"rateOptions"`
}

type rateLine struct {
	ServiceCode  string   `json:"serviceCode"`
	ServiceName  string   `json:"serviceName"`
	ShipmentCost *float64 `json:"shipmentCost"`
	OtherCost    *float64 `json:"otherCost"`
}

type errorBody struct {
	Message string `json:"message"`
}

func newRatesRequest(req RateRequest) ratesRequest {
	return ratesRequest{
		CarrierCode:    req.CarrierCode,
		ServiceCode:    nil,
		PackageCode:    "package",
		FromPostalCode: req.Origin.PostalCode,
		FromCity:       req.Origin.City,
		FromState:      req.Origin.State,
		FromCountry:    req.Origin.Country,
		ToPostalCode:   req.Destination.PostalCode,
		ToCity:         req.Destination.City,
		ToState:        req.Destination.State,
		ToCountry:      req.Destination.Country,
		ToStreet1:      req.Destination.AddressLine1,
		ToStreet2:      req.Destination.AddressLine2,
		Weight:         weight{Value: req.Package.Weight, Units: "pounds"},
		Dimensions: dimensions{
			Units:  "inches",
			Length: req.Package.Length,
			Width:  req.Package.Width,
			Height: req.Package.Height,
		},
		Confirmation:     "none",
		Residential:      true,
		SnakeRateOptions: snakeRateOptions{RateType: "quick"},
		CamelRateOptions: camelRateOptions{RateType: "quick"},
	}
}

// toRawRates drops lines without a service code, name or shipment cost.
func toRawRates(lines []rateLine) []model.RawRate {
	out := make([]model.RawRate, 0, len(lines))
	for _, l := range lines {
		if l.ServiceCode == "" || l.ServiceName == "" || l.ShipmentCost == nil {
			continue
		}
		r := model.RawRate{
			ServiceCode:  l.ServiceCode,
			ServiceName:  l.ServiceName,
			ShipmentCost: *l.ShipmentCost,
		}
		if l.OtherCost != nil {
			r.OtherCost = *l.OtherCost
		}
		out = append(out, r)
	}
	return out
}
