// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/shipstation"
)

type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetRates(ctx context.Context, req shipstation.RateRequest) ([]model.RawRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawRate), args.Error(1)
}

type MockCredentialTester struct {
	mock.Mock
}

func (m *MockCredentialTester) TestCredentials(ctx context.Context, key, secret string) shipstation.CredentialCheck {
	args := m.Called(ctx, key, secret)
	return args.Get(0).(shipstation.CredentialCheck)
}

type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) Settings(ctx context.Context) (model.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Settings), args.Error(1)
}

type MockRateCalculator struct {
	mock.Mock
}

func (m *MockRateCalculator) Calculate(ctx context.Context, query model.RateQuery) model.RateResult {
	args := m.Called(ctx, query)
	return args.Get(0).(model.RateResult)
}
