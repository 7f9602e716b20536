package repository

import (
	"context"
	"errors"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the singleton agency settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.AgencySettings, error) {
	var settings entity.AgencySettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// Create stores the agency settings row
func (r *settingsRepository) Create(ctx context.Context, settings *entity.AgencySettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the agency settings row
func (r *settingsRepository) Update(ctx context.Context, settings *entity.AgencySettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
