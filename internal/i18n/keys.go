// Package i18n provides internationalization support for the rate service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationItems indicates a negative quantity or measurement in the cart.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationSettings indicates a rejected settings document.
	ErrKeyValidationSettings = "error.validation.settings"
	// ErrKeyUnknownCarrier indicates a carrier other than USPS or UPS.
	ErrKeyUnknownCarrier = "error.unknown_carrier"
	// ErrKeySettingsUnavailable indicates the settings store could not be reached.
	ErrKeySettingsUnavailable = "error.settings_unavailable"
	// ErrKeyProviderUnavailable indicates the rate provider failed during discovery.
	ErrKeyProviderUnavailable = "error.provider_unavailable"
	// ErrKeyCredentialsNotConfigured indicates discovery was attempted without API credentials.
	ErrKeyCredentialsNotConfigured = "error.credentials_not_configured"
)

// Credential test message keys. Some take format arguments.
const (
	// MsgKeyCredentialsRequired: both key and secret must be supplied.
	MsgKeyCredentialsRequired = "credentials.required"
	// MsgKeyCredentialsOK takes the number of carriers found.
	MsgKeyCredentialsOK = "credentials.ok"
	// MsgKeyCredentialsAuthFailed: the provider rejected the pair.
	MsgKeyCredentialsAuthFailed = "credentials.auth_failed"
	// MsgKeyCredentialsUnexpectedStatus takes the HTTP status code.
	MsgKeyCredentialsUnexpectedStatus = "credentials.unexpected_status"
	// MsgKeyCredentialsTransportFailure takes the transport error text.
	MsgKeyCredentialsTransportFailure = "credentials.transport_failure"
)
