package repository

import (
	"context"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// SettingsRepositoryInterface defines the interface for settings repository operations.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*SettingsDocument, error)
	Save(ctx context.Context, settings model.Settings, updatedBy string) (*SettingsDocument, error)
	SeedIfMissing(ctx context.Context, settings model.Settings) (bool, error)
}
