package handler

import (
	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/request"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles agency settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the agency settings
// @Summary Get Settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings applies a partial update to the agency settings
// @Summary Update Settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		AgencyName:             req.AgencyName,
		ContactEmail:           req.ContactEmail,
		ContactPhone:           req.ContactPhone,
		DefaultCurrency:        req.DefaultCurrency,
		TaxPercentage:          req.TaxPercentage,
		DefaultLeadProbability: req.DefaultLeadProbability,
		FollowUpReminderHour:   req.FollowUpReminderHour,
		EmailNotifications:     req.EmailNotifications,
		Locale:                 req.Locale,
		Timezone:               req.Timezone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
