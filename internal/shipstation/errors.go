package shipstation

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned before any network activity when the key
// or secret is empty.
var ErrMissingCredentials = errors.New("shipstation: api credentials not configured")

// TransportError is a network-level failure: timeout, DNS, refused
// connection, or an open circuit.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shipstation transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError is a non-200 answer from the API.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shipstation returned error %d", e.StatusCode)
	}
	return fmt.Sprintf("shipstation returned error %d: %s", e.StatusCode, e.Message)
}

// DecodeError means a 200 answer whose body was not a JSON array of rates.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shipstation decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Error kinds, as reported in per-carrier error records.
const (
	KindMissingCredentials = "missing_credentials"
	KindTransport          = "transport"
	KindProvider           = "provider"
	KindDecode             = "decode"
	KindUnknown            = "unknown"
)

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	var (
		transportErr *TransportError
		providerErr  *ProviderError
		decodeErr    *DecodeError
	)
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return KindMissingCredentials
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &providerErr):
		return KindProvider
	case errors.As(err, &decodeErr):
		return KindDecode
	default:
		return KindUnknown
	}
}

// tripsBreaker reports whether err says the provider itself is unhealthy.
func tripsBreaker(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.StatusCode >= 500
	}
	return false
}
