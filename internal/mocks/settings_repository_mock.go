// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/repository"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*repository.SettingsDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SettingsDocument), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings model.Settings, updatedBy string) (*repository.SettingsDocument, error) {
	args := m.Called(ctx, settings, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SettingsDocument), args.Error(1)
}

func (m *MockSettingsRepository) SeedIfMissing(ctx context.Context, settings model.Settings) (bool, error) {
	args := m.Called(ctx, settings)
	return args.Bool(0), args.Error(1)
}
