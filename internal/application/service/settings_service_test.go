package service

import (
	"context"
	"net/http"
	"testing"

	infraRepo "github.com/g2rism/backoffice-api/internal/infrastructure/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	return NewSettingsService(infraRepo.NewSettingsRepository(setupTestDB(t)))
}

func TestGetSettings_CreatesDefaultsOnFirstRead(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)

	assert.Equal(t, "G2RISM", settings.AgencyName)
	assert.Equal(t, "COP", settings.DefaultCurrency)
	assert.True(t, settings.TaxPercentage.Equal(decimal.NewFromInt(19)))
	assert.Equal(t, 50, settings.DefaultLeadProbability)
	assert.True(t, settings.EmailNotifications)

	again, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	name := "G2RISM Viajes"
	tax := decimal.NewFromInt(5)
	updated, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		AgencyName:    &name,
		TaxPercentage: &tax,
	})
	require.NoError(t, err)

	assert.Equal(t, "G2RISM Viajes", updated.AgencyName)
	assert.True(t, updated.TaxPercentage.Equal(tax))
	assert.Equal(t, "COP", updated.DefaultCurrency)
}

func TestUpdateSettings_RangeValidation(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	tax := decimal.NewFromInt(120)
	_, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{TaxPercentage: &tax})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	probability := -5
	_, err = svc.UpdateSettings(ctx, &UpdateSettingsInput{DefaultLeadProbability: &probability})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	hour := 24
	_, err = svc.UpdateSettings(ctx, &UpdateSettingsInput{FollowUpReminderHour: &hour})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
