package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
		assert.Equal(t, 120*time.Second, cfg.Cache.RatesTTL)
		assert.Equal(t, 120*time.Second, cfg.Cache.LockTTL)
		assert.Equal(t, 10*time.Second, cfg.Cache.LockWindow)
		assert.Equal(t, 90*time.Second, cfg.Cache.ProviderTTL)
		assert.Equal(t, 30*time.Second, cfg.Provider.RateTimeout)
		assert.Equal(t, 15*time.Second, cfg.Provider.CredentialTimeout)
		assert.Equal(t, "https://ssapi.shipstation.com", cfg.Provider.BaseURL)
		assert.False(t, cfg.Database.Enabled)
		assert.Nil(t, cfg.Auth.AdminAPIKeys)
		assert.Equal(t, "lbs", cfg.Shipping.WeightUnit)
		assert.Equal(t, "in", cfg.Shipping.DimensionUnit)
		assert.Equal(t, 12.0, cfg.Shipping.DefaultLength)
		assert.Equal(t, 1.0, cfg.Shipping.DefaultWeight)
		assert.Equal(t, "US", cfg.Shipping.Origin.Country)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CACHE_BACKEND", "Redis")
		_ = os.Setenv("REDIS_URL", "redis://cache:6379/2")
		_ = os.Setenv("RATES_LOCK_WINDOW", "5s")
		_ = os.Setenv("ADMIN_API_KEYS", "key1,key2")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("SHIPSTATION_API_KEY", "ss-key")
		_ = os.Setenv("SHIPSTATION_API_SECRET", "ss-secret")
		_ = os.Setenv("SHIPPING_DEFAULT_WEIGHT", "2.5")
		_ = os.Setenv("SHIPPING_USPS_SERVICES", "usps_priority_mail, usps_media_mail")
		_ = os.Setenv("SHIPPING_DISABLE_UPS", "true")
		_ = os.Setenv("STORE_POSTAL_CODE", "10001")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
		assert.Equal(t, "redis://cache:6379/2", cfg.Cache.RedisURL)
		assert.Equal(t, 5*time.Second, cfg.Cache.LockWindow)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.AdminAPIKeys)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "ss-key", cfg.Shipping.APIKey)
		assert.Equal(t, 2.5, cfg.Shipping.DefaultWeight)
		assert.Equal(t, []string{"usps_priority_mail", "usps_media_mail"}, cfg.Shipping.USPSServices)
		assert.True(t, cfg.Shipping.DisableUPS)
		assert.Equal(t, "10001", cfg.Shipping.Origin.PostalCode)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("SHIPPING_DEFAULT_LENGTH", "twelve")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 12.0, cfg.Shipping.DefaultLength)
	})

	t.Run("parses admin keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("ADMIN_API_KEYS", " key1 , , key2 ,")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.AdminAPIKeys)
	})

	t.Run("appends CORS origins to the local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://shop.example.com"}, cfg.Server.CORSOrigins)
	})
}

func TestShippingConfig_Settings(t *testing.T) {
	s := ShippingConfig{
		APIKey:       "k",
		APISecret:    "s",
		WeightUnit:   "oz",
		USPSServices: []string{"usps_priority_mail"},
		DisableUPS:   true,
		Origin:       model.Address{PostalCode: "10001", Country: "US"},
	}

	settings := s.Settings()

	assert.True(t, settings.HasCredentials())
	assert.Equal(t, "oz", settings.WeightUnit)
	assert.Equal(t, []string{"usps_priority_mail"}, settings.USPSServices)
	assert.True(t, settings.DisableUPS)
	assert.Nil(t, settings.ServiceConfig)
	assert.Equal(t, "10001", settings.Origin.PostalCode)
}
