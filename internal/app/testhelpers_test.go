package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// testConfig returns a config that needs no external services.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			AdminRateLimit: 30,
			RequestTimeout: 5 * time.Second,
		},
		Cache: config.CacheConfig{
			Backend:     config.CacheBackendMemory,
			Size:        100,
			Shards:      4,
			RatesTTL:    time.Minute,
			LockTTL:     time.Minute,
			LockWindow:  10 * time.Second,
			ProviderTTL: time.Minute,
			SettingsTTL: time.Second,
		},
		Provider: config.ProviderConfig{
			RateTimeout:                    2 * time.Second,
			CredentialTimeout:              2 * time.Second,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Database: config.DatabaseConfig{
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Shipping: config.ShippingConfig{
			APIKey:        "env-key-1234",
			APISecret:     "env-secret-5678",
			DefaultLength: 12,
			DefaultWidth:  12,
			DefaultHeight: 12,
			DefaultWeight: 1,
			WeightUnit:    "lbs",
			DimensionUnit: "in",
			USPSServices:  []string{"usps_priority_mail"},
			Origin:        model.Address{PostalCode: "10001", City: "New York", State: "NY", Country: "US"},
		},
		Log: config.LogConfig{Level: "error"},
	}
}

// fakeShipStation answers rate requests with one USPS and one UPS line and
// accepts any credentials on the carriers listing.
func fakeShipStation(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/shipments/getrates", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CarrierCode string `json:"carrierCode"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body.CarrierCode == model.UPS.Code {
			_, _ = w.Write([]byte(`[{"serviceCode":"ups_ground","serviceName":"UPS Ground","shipmentCost":11,"otherCost":0}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"serviceCode":"usps_priority_mail","serviceName":"Priority Mail","shipmentCost":8,"otherCost":1.5}]`))
	})
	mux.HandleFunc("/carriers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"code":"stamps_com"},{"code":"ups"}]`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func hasRoute(engine *gin.Engine, method, path string) bool {
	for _, r := range engine.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
