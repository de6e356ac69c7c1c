package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/internal/cache"
	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/logger"
	"github.com/guttosm/shiprate-service/internal/metrics"
	"github.com/guttosm/shiprate-service/internal/shipstation"
	"github.com/guttosm/shiprate-service/internal/units"
)

const (
	// DefaultRatesTTL is how long a published rate list is replayed.
	DefaultRatesTTL = 120 * time.Second
	// DefaultLockTTL is how long the in-flight marker is kept at all.
	DefaultLockTTL = 120 * time.Second
	// DefaultLockWindow is the age under which the marker means "in flight".
	DefaultLockWindow = 10 * time.Second
)

// RateProvider fetches raw rates for one carrier.
type RateProvider interface {
	GetRates(ctx context.Context, req shipstation.RateRequest) ([]model.RawRate, error)
}

// SettingsProvider supplies the administrator settings. The rate pipeline
// only reads them.
type SettingsProvider interface {
	Settings(ctx context.Context) (model.Settings, error)
}

// RateCalculator runs checkout rate calculations.
type RateCalculator interface {
	Calculate(ctx context.Context, query model.RateQuery) model.RateResult
}

// RateOption configures a RateCalculatorService.
type RateOption func(*RateCalculatorService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RateOption {
	return func(s *RateCalculatorService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRatesTTL sets how long published rates are cached.
func WithRatesTTL(ttl time.Duration) RateOption {
	return func(s *RateCalculatorService) {
		if ttl > 0 {
			s.ratesTTL = ttl
		}
	}
}

// WithLockTiming sets the in-flight marker TTL and the window during which it
// suppresses new calculations.
func WithLockTiming(ttl, window time.Duration) RateOption {
	return func(s *RateCalculatorService) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
		if window > 0 {
			s.lockWindow = window
		}
	}
}

// RateCalculatorService orchestrates package building, per-carrier fetches,
// service policy, sorting and the session cache.
type RateCalculatorService struct {
	provider   RateProvider
	settings   SettingsProvider
	store      cache.Store
	policy     ServicePolicy
	now        func() time.Time
	ratesTTL   time.Duration
	lockTTL    time.Duration
	lockWindow time.Duration
}

// NewRateCalculatorService creates a RateCalculatorService.
func NewRateCalculatorService(provider RateProvider, settings SettingsProvider, store cache.Store, opts ...RateOption) *RateCalculatorService {
	s := &RateCalculatorService{
		provider:   provider,
		settings:   settings,
		store:      store,
		now:        time.Now,
		ratesTTL:   DefaultRatesTTL,
		lockTTL:    DefaultLockTTL,
		lockWindow: DefaultLockWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate returns the priced shipping options for a cart and destination.
// It never fails: every problem ends in a possibly empty result whose Source
// and Outcome say why.
func (s *RateCalculatorService) Calculate(ctx context.Context, query model.RateQuery) model.RateResult {
	start := s.now()
	result := model.RateResult{Rates: []model.QuotedRate{}}
	defer func() {
		metrics.RecordRateCalculation(s.now().Sub(start), string(result.Source), result.Outcome)
	}()

	settings, err := s.settings.Settings(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Settings unavailable, calculating with empty settings")
		settings = model.Settings{}
	}
	debug := settings.DebugEnabled

	keys := DeriveKeys(query.Destination, query.Items)

	cached, found, err := cache.GetJSON[[]model.QuotedRate](ctx, s.store, keys.Rates)
	if err != nil {
		log.Warn().Err(err).Str("rates_key", keys.Rates).Msg("Rates cache read failed")
	}
	if found {
		s.writeLock(ctx, keys.Lock)
		if cached != nil {
			result.Rates = cached
		}
		result.Source = model.SourceCache
		result.Outcome = model.OutcomeOK
		logger.Diagnostic(debug).
			Str("rates_key", keys.Rates).
			Int("rates_count", len(result.Rates)).
			Msg("Replaying cached rates")
		return result
	}

	if s.lockHeld(ctx, keys.Lock) {
		result.Source = model.SourceLocked
		result.Outcome = model.OutcomeInFlight
		logger.Diagnostic(debug).
			Str("lock_key", keys.Lock).
			Msg("Calculation already in flight, returning no rates")
		return result
	}

	s.writeLock(ctx, keys.Lock)
	defer s.releaseLock(ctx, keys.Lock)

	if !settings.HasCredentials() {
		result.Source = model.SourceSkipped
		result.Outcome = model.OutcomeNoCredentials
		logger.Diagnostic(debug).Msg("API credentials not configured, skipping rate fetch")
		return result
	}
	if err := validateDestination(query.Destination); err != nil {
		result.Source = model.SourceSkipped
		result.Outcome = model.OutcomeInvalidDestination
		logger.Diagnostic(debug).Err(err).Msg("Destination incomplete, skipping rate fetch")
		return result
	}

	weightUnit, dimUnit := resolveUnits(query, settings)
	pkg := NewPackageBuilder(DefaultsFromSettings(settings)).Build(query.Items, weightUnit, dimUnit)
	result.Package = &pkg

	var rates []model.QuotedRate
	for _, carrier := range model.Carriers() {
		if !settings.CarrierActive(carrier) {
			logger.Diagnostic(debug).Str("carrier", carrier.Name).Msg("Carrier inactive, skipping")
			continue
		}

		raw, err := s.provider.GetRates(ctx, shipstation.RateRequest{
			CarrierCode: carrier.Code,
			Origin:      settings.Origin,
			Destination: query.Destination,
			Package:     pkg,
			Credentials: shipstation.Credentials{APIKey: settings.APIKey, APISecret: settings.APISecret},
			Debug:       debug,
		})
		if err != nil {
			result.CarrierErrors = append(result.CarrierErrors, model.CarrierError{
				Carrier: carrier.Name,
				Kind:    shipstation.Kind(err),
				Message: err.Error(),
			})
			log.Warn().
				Err(err).
				Str("carrier", carrier.Name).
				Str("kind", shipstation.Kind(err)).
				Msg("Carrier rate fetch failed")
			continue
		}

		quoted := s.policy.Apply(carrier, raw, settings)
		logger.Diagnostic(debug).
			Str("carrier", carrier.Name).
			Int("raw_count", len(raw)).
			Int("enabled_count", len(quoted)).
			Msg("Carrier rates filtered")
		rates = append(rates, quoted...)
	}

	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Cost < rates[j].Cost
	})

	result.Source = model.SourceProvider
	if len(rates) == 0 {
		result.Outcome = model.OutcomeNoRates
		return result
	}

	result.Rates = rates
	result.Outcome = model.OutcomeOK
	if err := cache.SetJSON(ctx, s.store, keys.Rates, rates, s.ratesTTL); err != nil {
		log.Warn().Err(err).Str("rates_key", keys.Rates).Msg("Rates cache write failed")
	}
	return result
}

func validateDestination(addr model.Address) error {
	if addr.PostalCode == "" {
		return NewValidationError("postal_code", "destination postal code is required")
	}
	if addr.Country == "" {
		return NewValidationError("country", "destination country is required")
	}
	return nil
}

// resolveUnits prefers the units sent with the query over the store's units.
func resolveUnits(query model.RateQuery, settings model.Settings) (units.WeightUnit, units.DimensionUnit) {
	weightName := settings.WeightUnit
	if query.WeightUnit != "" {
		weightName = query.WeightUnit
	}
	dimName := settings.DimensionUnit
	if query.DimensionUnit != "" {
		dimName = query.DimensionUnit
	}

	weightUnit, err := units.ParseWeightUnit(weightName)
	if err != nil {
		weightUnit = units.Pounds
	}
	dimUnit, err := units.ParseDimensionUnit(dimName)
	if err != nil {
		dimUnit = units.Inches
	}
	return weightUnit, dimUnit
}

// writeLock stamps the in-flight marker with the current time.
func (s *RateCalculatorService) writeLock(ctx context.Context, key string) {
	stamp := strconv.FormatInt(s.now().UnixNano(), 10)
	if err := s.store.Set(ctx, key, []byte(stamp), s.lockTTL); err != nil {
		log.Warn().Err(err).Str("lock_key", key).Msg("Lock write failed")
	}
}

// lockHeld reports whether a marker younger than the lock window exists.
func (s *RateCalculatorService) lockHeld(ctx context.Context, key string) bool {
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("lock_key", key).Msg("Lock read failed")
		return false
	}
	if !found {
		return false
	}
	nanos, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return false
	}
	return s.now().Sub(time.Unix(0, nanos)) < s.lockWindow
}

func (s *RateCalculatorService) releaseLock(ctx context.Context, key string) {
	// The request context may already be done; the marker must still go.
	if err := s.store.Delete(context.WithoutCancel(ctx), key); err != nil {
		log.Warn().Err(err).Str("lock_key", key).Msg("Lock release failed")
	}
}
