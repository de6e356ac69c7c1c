package shipstation

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/internal/cache"
	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/logger"
	"github.com/guttosm/shiprate-service/internal/metrics"
)

const (
	// DefaultBaseURL is the production V1 API.
	DefaultBaseURL = "https://ssapi.shipstation.com"

	ratesPath    = "/shipments/getrates"
	carriersPath = "/carriers"

	defaultRateTimeout       = 30 * time.Second
	defaultCredentialTimeout = 15 * time.Second
	defaultCacheTTL          = 90 * time.Second
	rateCacheKeyPrefix       = "ss-rates:"
	maxResponseBytes         = 4 << 20
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeouts sets the rate fetch and credential test timeouts.
func WithTimeouts(rates, credentials time.Duration) Option {
	return func(c *Client) {
		if rates > 0 {
			c.rateTimeout = rates
		}
		if credentials > 0 {
			c.credentialTimeout = credentials
		}
	}
}

// WithCache enables the short-lived response cache.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.store = store
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithCircuitBreaker guards rate fetches with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// Client fetches carrier rates from ShipStation. It never retries.
type Client struct {
	baseURL           string
	httpClient        *http.Client
	rateTimeout       time.Duration
	credentialTimeout time.Duration
	store             cache.Store
	cacheTTL          time.Duration
	breaker           *circuitbreaker.CircuitBreaker
}

// NewClient creates a Client with production defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:           DefaultBaseURL,
		httpClient:        &http.Client{},
		rateTimeout:       defaultRateTimeout,
		credentialTimeout: defaultCredentialTimeout,
		cacheTTL:          defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BreakerConfig returns a circuit breaker config that only counts transport
// failures and 5xx answers.
func BreakerConfig(base circuitbreaker.Config) circuitbreaker.Config {
	base.IsFailure = tripsBreaker
	return base
}

// Breaker returns the configured circuit breaker, if any.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// GetRates returns every rate line the carrier offers for the request.
func (c *Client) GetRates(ctx context.Context, req RateRequest) ([]model.RawRate, error) {
	if !req.Credentials.Complete() {
		return nil, ErrMissingCredentials
	}

	key := rateCacheKey(req)
	if c.store != nil {
		cached, found, err := cache.GetJSON[[]model.RawRate](ctx, c.store, key)
		if err != nil {
			log.Warn().Err(err).Str("cache_key", key).Msg("Rate response cache read failed")
		}
		if found {
			logger.Diagnostic(req.Debug).
				Str("carrier", req.CarrierCode).
				Str("cache_key", key).
				Msg("Returning cached provider rates")
			metrics.RecordProviderRequest(req.CarrierCode, "cache", 0)
			return cached, nil
		}
	}

	logger.Diagnostic(req.Debug).
		Str("carrier", req.CarrierCode).
		Str("to_zip", req.Destination.PostalCode).
		Str("to_country", req.Destination.Country).
		Float64("weight", req.Package.Weight).
		Bool("quick", true).
		Msg("Sending rate request")

	start := time.Now()
	var rates []model.RawRate
	call := func() error {
		var err error
		rates, err = c.fetchRates(ctx, req)
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
		// Open circuit or a context that was already done.
		if err != nil && Kind(err) == KindUnknown {
			err = &TransportError{Err: err}
		}
	} else {
		err = call()
	}

	if err != nil {
		metrics.RecordProviderRequest(req.CarrierCode, Kind(err), time.Since(start))
		logger.Diagnostic(req.Debug).
			Err(err).
			Str("carrier", req.CarrierCode).
			Msg("Rate request failed")
		return nil, err
	}
	metrics.RecordProviderRequest(req.CarrierCode, "success", time.Since(start))

	logger.Diagnostic(req.Debug).
		Str("carrier", req.CarrierCode).
		Int("rates_count", len(rates)).
		Msg("Rate response received")

	if c.store != nil {
		if err := cache.SetJSON(ctx, c.store, key, rates, c.cacheTTL); err != nil {
			log.Warn().Err(err).Str("cache_key", key).Msg("Rate response cache write failed")
		}
	}
	return rates, nil
}

func (c *Client) fetchRates(ctx context.Context, req RateRequest) ([]model.RawRate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.rateTimeout)
	defer cancel()

	status, body, err := c.doRequest(ctx, http.MethodPost, ratesPath, req.Credentials, newRatesRequest(req))
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		logger.Diagnostic(req.Debug).
			Int("status_code", status).
			Str("body", string(body)).
			Msg("Rate request error response")
		return nil, &ProviderError{StatusCode: status, Message: eb.Message}
	}

	var lines []rateLine
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if lines == nil {
		return nil, &DecodeError{Err: errors.New("response is not an array")}
	}
	return toRawRates(lines), nil
}

// TestCredentials checks key and secret against the carriers listing.
// It bypasses the cache and the circuit breaker.
func (c *Client) TestCredentials(ctx context.Context, key, secret string) CredentialCheck {
	creds := Credentials{APIKey: key, APISecret: secret}
	if !creds.Complete() {
		return CredentialCheck{Reason: ReasonMissingInput}
	}

	ctx, cancel := context.WithTimeout(ctx, c.credentialTimeout)
	defer cancel()

	status, body, err := c.doRequest(ctx, http.MethodGet, carriersPath, creds, nil)
	if err != nil {
		var transportErr *TransportError
		detail := err.Error()
		if errors.As(err, &transportErr) {
			detail = transportErr.Err.Error()
		}
		return CredentialCheck{Reason: ReasonTransportFailure, Detail: detail}
	}

	switch status {
	case http.StatusOK:
		var carriers []json.RawMessage
		count := 0
		if json.Unmarshal(body, &carriers) == nil {
			count = len(carriers)
		}
		return CredentialCheck{Success: true, Reason: ReasonOK, StatusCode: status, CarrierCount: count}
	case http.StatusUnauthorized:
		return CredentialCheck{Reason: ReasonAuthFailed, StatusCode: status}
	default:
		return CredentialCheck{Reason: ReasonUnexpectedStatus, StatusCode: status}
	}
}

// doRequest returns the status and body; transport failures come back as
// *TransportError.
func (c *Client) doRequest(ctx context.Context, method, path string, creds Credentials, body interface{}) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(creds.APIKey, creds.APISecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	return resp.StatusCode, respBytes, nil
}

type cacheKeyData struct {
	ToPostcode string  `json:"to_postcode"`
	ToCountry  string  `json:"to_country"`
	Weight     float64 `json:"weight"`
	Carrier    string  `json:"carrier"`
}

func rateCacheKey(req RateRequest) string {
	raw, _ := json.Marshal(cacheKeyData{
		ToPostcode: req.Destination.PostalCode,
		ToCountry:  req.Destination.Country,
		Weight:     req.Package.Weight,
		Carrier:    req.CarrierCode,
	})
	sum := sha256.Sum256(raw)
	return rateCacheKeyPrefix + hex.EncodeToString(sum[:])
}
