package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (RatesResponse for the rates endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items[0].quantity: must not be negative"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// RatesResponse is the body of a rate calculation. Rates is always present,
// possibly empty; Source and Outcome explain an empty list.
//
// @Description Shipping rates for a cart
type RatesResponse struct {
	Rates         []model.QuotedRate       `json:"rates"`
	Source        string                   `json:"source" example:"provider"`
	Outcome       string                   `json:"outcome" example:"ok"`
	Package       *model.PackageDescriptor `json:"package,omitempty"`
	CarrierErrors []model.CarrierError     `json:"carrier_errors,omitempty"`
} // @name RatesResponse

// NewRatesResponse builds a RatesResponse from a calculation result.
func NewRatesResponse(result model.RateResult) RatesResponse {
	rates := result.Rates
	if rates == nil {
		rates = []model.QuotedRate{}
	}
	return RatesResponse{
		Rates:         rates,
		Source:        string(result.Source),
		Outcome:       result.Outcome,
		Package:       result.Package,
		CarrierErrors: result.CarrierErrors,
	}
}

// CredentialTestResponse reports a credential check in user-facing terms.
//
// @Description Credential test outcome
type CredentialTestResponse struct {
	Success      bool   `json:"success" example:"true"`
	Reason       string `json:"reason" example:"ok"`
	Message      string `json:"message" example:"Connection successful. 4 carriers available."`
	StatusCode   int    `json:"status_code,omitempty" example:"200"`
	CarrierCount int    `json:"carrier_count" example:"4"`
} // @name CredentialTestResponse

// ServicesResponse lists the carriers and their known services.
//
// @Description Carrier service catalog
type ServicesResponse struct {
	Carriers []model.Carrier `json:"carriers"`
} // @name ServicesResponse

// SettingsResponse is the stored settings document with secrets masked.
//
// @Description Administrator settings document
type SettingsResponse struct {
	Settings  SettingsPayload `json:"settings"`
	Version   int             `json:"version" example:"3"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
	UpdatedBy string          `json:"updated_by,omitempty" example:"ops@example.com"`
	Source    string          `json:"source" example:"stored"`
} // @name SettingsResponse

// DiscoveryResponse reports the outcome of a service discovery probe.
//
// @Description Service discovery outcome
type DiscoveryResponse struct {
	Carrier    string              `json:"carrier" example:"USPS"`
	Discovered []model.ServiceInfo `json:"discovered"`
	Added      []string            `json:"added"`
	Version    int                 `json:"version" example:"4"`
} // @name DiscoveryResponse
