package service

import (
	"context"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SettingsService handles the agency settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the agency settings, creating the row with defaults on
// first read
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.AgencySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.AgencySettings{
			AgencyName:             "G2RISM",
			DefaultCurrency:        "COP",
			TaxPercentage:          decimal.NewFromInt(19),
			DefaultLeadProbability: 50,
			FollowUpReminderHour:   8,
			EmailNotifications:     true,
			Locale:                 "es-CO",
			Timezone:               "America/Bogota",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the update settings input; nil fields are unchanged
type UpdateSettingsInput struct {
	AgencyName             *string
	ContactEmail           *string
	ContactPhone           *string
	DefaultCurrency        *string
	TaxPercentage          *decimal.Decimal
	DefaultLeadProbability *int
	FollowUpReminderHour   *int
	EmailNotifications     *bool
	Locale                 *string
	Timezone               *string
}

// UpdateSettings applies a partial update to the agency settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.AgencySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.AgencyName != nil {
		settings.AgencyName = *input.AgencyName
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		settings.ContactPhone = *input.ContactPhone
	}
	if input.DefaultCurrency != nil {
		settings.DefaultCurrency = *input.DefaultCurrency
	}
	if input.TaxPercentage != nil {
		if input.TaxPercentage.IsNegative() || input.TaxPercentage.GreaterThan(decimal.NewFromInt(100)) {
			return nil, apperror.NewBadRequestError("Tax percentage must be between 0 and 100")
		}
		settings.TaxPercentage = *input.TaxPercentage
	}
	if input.DefaultLeadProbability != nil {
		if *input.DefaultLeadProbability < 0 || *input.DefaultLeadProbability > 100 {
			return nil, apperror.NewBadRequestError("Default lead probability must be between 0 and 100")
		}
		settings.DefaultLeadProbability = *input.DefaultLeadProbability
	}
	if input.FollowUpReminderHour != nil {
		if *input.FollowUpReminderHour < 0 || *input.FollowUpReminderHour > 23 {
			return nil, apperror.NewBadRequestError("Follow-up reminder hour must be between 0 and 23")
		}
		settings.FollowUpReminderHour = *input.FollowUpReminderHour
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.Locale != nil {
		settings.Locale = *input.Locale
	}
	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
