package shipstation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "missing credentials", err: ErrMissingCredentials, expected: KindMissingCredentials},
		{name: "wrapped missing credentials", err: fmt.Errorf("usps: %w", ErrMissingCredentials), expected: KindMissingCredentials},
		{name: "transport", err: &TransportError{Err: context.DeadlineExceeded}, expected: KindTransport},
		{name: "provider", err: &ProviderError{StatusCode: 400, Message: "bad zip"}, expected: KindProvider},
		{name: "decode", err: &DecodeError{Err: errors.New("unexpected token")}, expected: KindDecode},
		{name: "other", err: errors.New("boom"), expected: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.err))
		})
	}
}

func TestTripsBreaker(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "transport", err: &TransportError{Err: errors.New("connection refused")}, expected: true},
		{name: "server error", err: &ProviderError{StatusCode: 503}, expected: true},
		{name: "unauthorized", err: &ProviderError{StatusCode: 401}, expected: false},
		{name: "decode", err: &DecodeError{Err: errors.New("eof")}, expected: false},
		{name: "missing credentials", err: ErrMissingCredentials, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tripsBreaker(tt.err))
		})
	}
}

func TestProviderError_Message(t *testing.T) {
	assert.Equal(t, "shipstation returned error 500", (&ProviderError{StatusCode: 500}).Error())
	assert.Equal(t, "shipstation returned error 400: bad zip", (&ProviderError{StatusCode: 400, Message: "bad zip"}).Error())
}

func TestTransportError_Unwraps(t *testing.T) {
	err := &TransportError{Err: context.DeadlineExceeded}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
