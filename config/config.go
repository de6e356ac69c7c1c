// Package config provides configuration management for the rate service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Provider ProviderConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Shipping ShippingConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	AdminRateLimit int
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
}

// CacheConfig holds the rate cache and in-flight marker configuration.
type CacheConfig struct {
	// Backend is "memory" for a single instance or "redis" when several
	// instances must share rates and in-flight markers.
	Backend   string
	Size      int
	Shards    int
	RedisURL  string
	KeyPrefix string
	// RatesTTL is how long a quoted result is replayed for the same cart.
	RatesTTL time.Duration
	// LockTTL and LockWindow control the in-flight marker: it is stored for
	// LockTTL but only honoured while younger than LockWindow.
	LockTTL    time.Duration
	LockWindow time.Duration
	// ProviderTTL caches raw provider answers per shipment.
	ProviderTTL time.Duration
	// SettingsTTL is how long a stored settings snapshot is reused.
	SettingsTTL time.Duration
}

// ProviderConfig holds ShipStation client configuration.
type ProviderConfig struct {
	BaseURL           string
	RateTimeout       time.Duration
	CredentialTimeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration for the settings store.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds admin API authentication configuration.
type AuthConfig struct {
	AdminAPIKeys []string
}

// ShippingConfig holds the settings used when no settings document is
// stored. With a database they seed the first document.
type ShippingConfig struct {
	APIKey        string
	APISecret     string
	DebugEnabled  bool
	DefaultLength float64
	DefaultWidth  float64
	DefaultHeight float64
	DefaultWeight float64
	WeightUnit    string
	DimensionUnit string
	USPSServices  []string
	UPSServices   []string
	DisableUSPS   bool
	DisableUPS    bool
	Origin        model.Address
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			AdminRateLimit: getEnvInt("ADMIN_RATE_LIMIT", 30),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 45*time.Second),
		},
		Cache: CacheConfig{
			Backend:     strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
			Size:        getEnvInt("CACHE_SIZE", 10000),
			Shards:      getEnvInt("CACHE_SHARDS", 16),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
			KeyPrefix:   getEnv("CACHE_KEY_PREFIX", "shiprate:"),
			RatesTTL:    getEnvDuration("RATES_CACHE_TTL", 120*time.Second),
			LockTTL:     getEnvDuration("RATES_LOCK_TTL", 120*time.Second),
			LockWindow:  getEnvDuration("RATES_LOCK_WINDOW", 10*time.Second),
			ProviderTTL: getEnvDuration("PROVIDER_CACHE_TTL", 90*time.Second),
			SettingsTTL: getEnvDuration("SETTINGS_CACHE_TTL", 30*time.Second),
		},
		Provider: ProviderConfig{
			BaseURL:                        getEnv("SHIPSTATION_BASE_URL", "https://ssapi.shipstation.com"),
			RateTimeout:                    getEnvDuration("SHIPSTATION_RATE_TIMEOUT", 30*time.Second),
			CredentialTimeout:              getEnvDuration("SHIPSTATION_CREDENTIAL_TIMEOUT", 15*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("PROVIDER_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("PROVIDER_CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("PROVIDER_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "shiprate_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			AdminAPIKeys: parseList(os.Getenv("ADMIN_API_KEYS")),
		},
		Shipping: ShippingConfig{
			APIKey:        getEnv("SHIPSTATION_API_KEY", ""),
			APISecret:     getEnv("SHIPSTATION_API_SECRET", ""),
			DebugEnabled:  getEnvBool("SHIPSTATION_DEBUG", false),
			DefaultLength: getEnvFloat("SHIPPING_DEFAULT_LENGTH", 12),
			DefaultWidth:  getEnvFloat("SHIPPING_DEFAULT_WIDTH", 12),
			DefaultHeight: getEnvFloat("SHIPPING_DEFAULT_HEIGHT", 12),
			DefaultWeight: getEnvFloat("SHIPPING_DEFAULT_WEIGHT", 1),
			WeightUnit:    getEnv("SHIPPING_WEIGHT_UNIT", "lbs"),
			DimensionUnit: getEnv("SHIPPING_DIMENSION_UNIT", "in"),
			USPSServices:  parseList(os.Getenv("SHIPPING_USPS_SERVICES")),
			UPSServices:   parseList(os.Getenv("SHIPPING_UPS_SERVICES")),
			DisableUSPS:   getEnvBool("SHIPPING_DISABLE_USPS", false),
			DisableUPS:    getEnvBool("SHIPPING_DISABLE_UPS", false),
			Origin: model.Address{
				PostalCode: getEnv("STORE_POSTAL_CODE", ""),
				City:       getEnv("STORE_CITY", ""),
				State:      getEnv("STORE_STATE", ""),
				Country:    getEnv("STORE_COUNTRY", "US"),
			},
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Settings converts the shipping section into domain settings.
func (s ShippingConfig) Settings() model.Settings {
	return model.Settings{
		APIKey:        s.APIKey,
		APISecret:     s.APISecret,
		DebugEnabled:  s.DebugEnabled,
		DefaultLength: s.DefaultLength,
		DefaultWidth:  s.DefaultWidth,
		DefaultHeight: s.DefaultHeight,
		DefaultWeight: s.DefaultWeight,
		WeightUnit:    s.WeightUnit,
		DimensionUnit: s.DimensionUnit,
		USPSServices:  s.USPSServices,
		UPSServices:   s.UPSServices,
		DisableUSPS:   s.DisableUSPS,
		DisableUPS:    s.DisableUPS,
		Origin:        s.Origin,
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma separated value, dropping blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	return append(defaults, parseList(s)...)
}
