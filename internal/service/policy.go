package service

import (
	"regexp"
	"strings"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// RateIDPrefix is prepended to service codes to build rate ids.
const RateIDPrefix = "hp_ss_"

var slugInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)

// Slugify lower-cases s, collapses runs of characters outside [a-z0-9_-] into
// a single '-' and trims leading and trailing '-'.
func Slugify(s string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// RateID builds the checkout-facing id for a service code.
func RateID(serviceCode string) string {
	return Slugify(RateIDPrefix + serviceCode)
}

// Resolution is a resolver's decision for one service code.
type Resolution struct {
	Enabled bool
	// Label is empty when the provider's own service name should be shown.
	Label string
}

// ServiceResolver decides whether a service code is offered. ok is false when
// the resolver has no opinion and the next one should be asked.
type ServiceResolver interface {
	Resolve(serviceCode string) (res Resolution, ok bool)
}

// structuredResolver answers for codes present in the service_config map.
type structuredResolver struct {
	config map[string]model.ServiceConfigEntry
}

func (r structuredResolver) Resolve(code string) (Resolution, bool) {
	entry, ok := r.config[code]
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Enabled: entry.Enabled, Label: entry.DisplayName}, true
}

// legacyResolver enables codes listed in the flat per-carrier list. Legacy
// codes never carry a custom label.
type legacyResolver struct {
	codes map[string]struct{}
}

func newLegacyResolver(codes []string) legacyResolver {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return legacyResolver{codes: set}
}

func (r legacyResolver) Resolve(code string) (Resolution, bool) {
	if len(r.codes) == 0 {
		return Resolution{}, false
	}
	if _, ok := r.codes[code]; ok {
		return Resolution{Enabled: true}, true
	}
	return Resolution{}, false
}

// disabledResolver is the terminal fallback.
type disabledResolver struct{}

func (disabledResolver) Resolve(string) (Resolution, bool) {
	return Resolution{Enabled: false}, true
}

// ResolverChain returns the resolvers for carrier in priority order:
// structured config, legacy list, then disabled.
func ResolverChain(carrier model.Carrier, settings model.Settings) []ServiceResolver {
	return []ServiceResolver{
		structuredResolver{config: settings.ServiceConfig},
		newLegacyResolver(settings.LegacyServices(carrier)),
		disabledResolver{},
	}
}

// Resolve walks chain and returns the first answer.
func Resolve(chain []ServiceResolver, serviceCode string) Resolution {
	for _, r := range chain {
		if res, ok := r.Resolve(serviceCode); ok {
			return res
		}
	}
	return Resolution{}
}

// ServicePolicy filters and labels one carrier's raw rates.
type ServicePolicy struct{}

// Apply keeps enabled services in input order and prices each one as
// shipment cost plus other cost.
func (ServicePolicy) Apply(carrier model.Carrier, raw []model.RawRate, settings model.Settings) []model.QuotedRate {
	chain := ResolverChain(carrier, settings)
	out := make([]model.QuotedRate, 0, len(raw))

	for _, r := range raw {
		res := Resolve(chain, r.ServiceCode)
		if !res.Enabled {
			continue
		}

		label := res.Label
		if label == "" {
			label = r.ServiceName
		}

		out = append(out, model.QuotedRate{
			ID:    RateID(r.ServiceCode),
			Label: label,
			Cost:  r.TotalCost(),
			Metadata: model.RateMetadata{
				Carrier:      carrier.Name,
				ServiceCode:  r.ServiceCode,
				OriginalName: r.ServiceName,
				ShipmentCost: r.ShipmentCost,
				OtherCost:    r.OtherCost,
			},
		})
	}
	return out
}
