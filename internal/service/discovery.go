package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/shipstation"
)

// DiscoveryResult lists what a discovery probe found for one carrier.
type DiscoveryResult struct {
	Carrier    model.Carrier
	Discovered []model.ServiceInfo
	// Added holds the codes that were new to the service config.
	Added   []string
	Version int
}

// ServiceDiscovery finds the services a carrier offers on the account and
// adds them, disabled, to the service config.
type ServiceDiscovery struct {
	provider RateProvider
	settings SettingsManager
}

// NewServiceDiscovery creates a ServiceDiscovery.
func NewServiceDiscovery(provider RateProvider, settings SettingsManager) *ServiceDiscovery {
	return &ServiceDiscovery{provider: provider, settings: settings}
}

// Discover quotes a probe shipment from the store address to itself with the
// default package and merges every returned service code into the config.
// Existing entries are left untouched.
func (d *ServiceDiscovery) Discover(ctx context.Context, carrierName, updatedBy string) (DiscoveryResult, error) {
	carrier, ok := model.CarrierByName(carrierName)
	if !ok {
		return DiscoveryResult{}, ErrUnknownCarrier
	}

	view, err := d.settings.Current(ctx)
	if err != nil {
		return DiscoveryResult{}, err
	}
	settings := view.Settings

	if !settings.HasCredentials() {
		return DiscoveryResult{}, shipstation.ErrMissingCredentials
	}
	if settings.Origin.PostalCode == "" || settings.Origin.Country == "" {
		return DiscoveryResult{}, NewValidationError("origin", "store postal code and country are required")
	}

	defaults := DefaultsFromSettings(settings)
	raw, err := d.provider.GetRates(ctx, shipstation.RateRequest{
		CarrierCode: carrier.Code,
		Origin:      settings.Origin,
		Destination: settings.Origin,
		Package: model.PackageDescriptor{
			Weight: defaults.Weight,
			Length: defaults.Length,
			Width:  defaults.Width,
			Height: defaults.Height,
		},
		Credentials: shipstation.Credentials{APIKey: settings.APIKey, APISecret: settings.APISecret},
		Debug:       settings.DebugEnabled,
	})
	if err != nil {
		return DiscoveryResult{}, err
	}

	result := DiscoveryResult{Carrier: carrier, Version: view.Version}
	merged := settings.Clone()
	if merged.ServiceConfig == nil {
		merged.ServiceConfig = make(map[string]model.ServiceConfigEntry)
	}

	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		if _, dup := seen[r.ServiceCode]; dup {
			continue
		}
		seen[r.ServiceCode] = struct{}{}
		result.Discovered = append(result.Discovered, model.ServiceInfo{Code: r.ServiceCode, Name: r.ServiceName})

		// Codes without the carrier prefix could never be matched at checkout.
		if !carrier.Owns(r.ServiceCode) {
			continue
		}
		if _, exists := merged.ServiceConfig[r.ServiceCode]; exists {
			continue
		}
		merged.ServiceConfig[r.ServiceCode] = model.ServiceConfigEntry{Enabled: false}
		result.Added = append(result.Added, r.ServiceCode)
	}
	sort.Strings(result.Added)

	if len(result.Added) == 0 {
		return result, nil
	}

	saved, err := d.settings.Save(ctx, merged, updatedBy)
	if err != nil {
		return DiscoveryResult{}, err
	}
	result.Version = saved.Version

	log.Info().
		Str("carrier", carrier.Name).
		Int("discovered", len(result.Discovered)).
		Int("added", len(result.Added)).
		Msg("Service discovery merged new services")
	return result, nil
}
