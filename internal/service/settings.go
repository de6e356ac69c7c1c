package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/repository"
	"github.com/guttosm/shiprate-service/internal/units"
)

const (
	defaultSettingsCacheTTL = 30 * time.Second
	settingsFetchTimeout    = 2 * time.Second
	maskedSecretPrefix      = "****"
)

// Settings sources reported to administrators.
const (
	SettingsSourceStored = "stored"
	SettingsSourceSeed   = "seed"
)

// StaticSettingsProvider serves settings fixed at startup, used when no
// settings store is configured.
type StaticSettingsProvider struct {
	settings model.Settings
}

// NewStaticSettingsProvider creates a StaticSettingsProvider.
func NewStaticSettingsProvider(settings model.Settings) *StaticSettingsProvider {
	return &StaticSettingsProvider{settings: settings.Clone()}
}

// Settings returns a copy of the static settings.
func (p *StaticSettingsProvider) Settings(context.Context) (model.Settings, error) {
	return p.settings.Clone(), nil
}

// SettingsView is the settings document as shown to administrators.
type SettingsView struct {
	Settings  model.Settings
	Version   int
	UpdatedAt time.Time
	UpdatedBy string
	Source    string
}

// SettingsManager is the administrator side of the settings store.
type SettingsManager interface {
	SettingsProvider
	Current(ctx context.Context) (SettingsView, error)
	Save(ctx context.Context, settings model.Settings, updatedBy string) (SettingsView, error)
}

type settingsSnapshot struct {
	settings  model.Settings
	expiresAt time.Time
}

// SettingsOption configures a SettingsService.
type SettingsOption func(*SettingsService)

// WithSettingsCacheTTL sets how long a loaded settings snapshot is reused.
func WithSettingsCacheTTL(ttl time.Duration) SettingsOption {
	return func(s *SettingsService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSettingsClock replaces time.Now, mainly for tests.
func WithSettingsClock(now func() time.Time) SettingsOption {
	return func(s *SettingsService) {
		if now != nil {
			s.now = now
		}
	}
}

// SettingsService reads settings from the repository through a short-lived
// snapshot and falls back to the seed settings when nothing is stored or the
// store is unavailable.
type SettingsService struct {
	repo     repository.SettingsRepositoryInterface
	seed     model.Settings
	snapshot atomic.Pointer[settingsSnapshot]
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(repo repository.SettingsRepositoryInterface, seed model.Settings, opts ...SettingsOption) *SettingsService {
	s := &SettingsService{
		repo: repo,
		seed: seed.Clone(),
		ttl:  defaultSettingsCacheTTL,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed stores the seed settings if the repository has no document yet.
func (s *SettingsService) Seed(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	created, err := s.repo.SeedIfMissing(ctx, s.seed)
	if err != nil {
		return err
	}
	if created {
		log.Info().Msg("Seeded settings document from environment configuration")
	}
	return nil
}

// Settings returns the current settings. It does not fail: store errors are
// logged and the seed settings are returned instead.
func (s *SettingsService) Settings(ctx context.Context) (model.Settings, error) {
	if snap := s.snapshot.Load(); snap != nil && s.now().Before(snap.expiresAt) {
		return snap.settings.Clone(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed it while we waited.
	if snap := s.snapshot.Load(); snap != nil && s.now().Before(snap.expiresAt) {
		return snap.settings.Clone(), nil
	}

	view, err := s.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Settings store unavailable, using seed settings")
		return s.seed.Clone(), nil
	}
	if view.Source == SettingsSourceStored {
		s.snapshot.Store(&settingsSnapshot{settings: view.Settings.Clone(), expiresAt: s.now().Add(s.ttl)})
	}
	return view.Settings.Clone(), nil
}

// Current returns the stored settings document, or the seed settings when
// nothing is stored. Store errors are returned.
func (s *SettingsService) Current(ctx context.Context) (SettingsView, error) {
	return s.load(ctx)
}

func (s *SettingsService) load(ctx context.Context) (SettingsView, error) {
	if s.repo == nil {
		return SettingsView{Settings: s.seed.Clone(), Source: SettingsSourceSeed}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, settingsFetchTimeout)
	defer cancel()

	doc, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	if doc == nil {
		return SettingsView{Settings: s.seed.Clone(), Source: SettingsSourceSeed}, nil
	}
	return viewFromDocument(doc), nil
}

// Save validates and stores settings, then drops the cached snapshot.
func (s *SettingsService) Save(ctx context.Context, settings model.Settings, updatedBy string) (SettingsView, error) {
	if s.repo == nil {
		return SettingsView{}, ErrRepositoryNotConfigured
	}
	if err := ValidateSettings(settings); err != nil {
		return SettingsView{}, err
	}

	doc, err := s.repo.Save(ctx, settings, updatedBy)
	if err != nil {
		return SettingsView{}, err
	}
	s.Invalidate()

	log.Info().
		Int("version", doc.Version).
		Str("updated_by", updatedBy).
		Msg("Settings saved")
	return viewFromDocument(doc), nil
}

// Invalidate drops the cached snapshot.
func (s *SettingsService) Invalidate() {
	s.snapshot.Store(nil)
}

func viewFromDocument(doc *repository.SettingsDocument) SettingsView {
	return SettingsView{
		Settings:  doc.Settings.Clone(),
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		UpdatedBy: doc.UpdatedBy,
		Source:    SettingsSourceStored,
	}
}

// ValidateSettings rejects unknown units, negative package defaults and
// service codes that belong to neither carrier.
func ValidateSettings(s model.Settings) error {
	if s.WeightUnit != "" {
		if _, err := units.ParseWeightUnit(s.WeightUnit); err != nil {
			return NewValidationError("weight_unit", err.Error())
		}
	}
	if s.DimensionUnit != "" {
		if _, err := units.ParseDimensionUnit(s.DimensionUnit); err != nil {
			return NewValidationError("dimension_unit", err.Error())
		}
	}

	defaults := map[string]float64{
		"default_length": s.DefaultLength,
		"default_width":  s.DefaultWidth,
		"default_height": s.DefaultHeight,
		"default_weight": s.DefaultWeight,
	}
	for field, v := range defaults {
		if v < 0 {
			return NewValidationError(field, "must not be negative")
		}
	}

	for code := range s.ServiceConfig {
		if !model.USPS.Owns(code) && !model.UPS.Owns(code) {
			return NewValidationError("service_config", "unknown service code "+code)
		}
	}
	return nil
}

// MaskSecret hides all but the last four characters of a credential.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return maskedSecretPrefix
	}
	return maskedSecretPrefix + secret[len(secret)-4:]
}

// MergeSecrets keeps the stored credentials when the incoming settings carry
// the masked value that was shown to the administrator.
func MergeSecrets(incoming, stored model.Settings) model.Settings {
	if isMasked(incoming.APIKey, stored.APIKey) {
		incoming.APIKey = stored.APIKey
	}
	if isMasked(incoming.APISecret, stored.APISecret) {
		incoming.APISecret = stored.APISecret
	}
	return incoming
}

func isMasked(value, stored string) bool {
	return strings.HasPrefix(value, maskedSecretPrefix) && value == MaskSecret(stored)
}
