package repository

import (
	"context"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
)

// SettingsRepository defines the interface for agency settings data access.
// Settings are a singleton row created on first read.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AgencySettings, error)
	Create(ctx context.Context, settings *entity.AgencySettings) error
	Update(ctx context.Context, settings *entity.AgencySettings) error
}
