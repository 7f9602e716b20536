package request

import "github.com/shopspring/decimal"

// UpdateSettingsRequest represents a partial agency settings update
type UpdateSettingsRequest struct {
	AgencyName             *string          `json:"agency_name"`
	ContactEmail           *string          `json:"contact_email" binding:"omitempty,email"`
	ContactPhone           *string          `json:"contact_phone"`
	DefaultCurrency        *string          `json:"default_currency"`
	TaxPercentage          *decimal.Decimal `json:"tax_percentage"`
	DefaultLeadProbability *int             `json:"default_lead_probability"`
	FollowUpReminderHour   *int             `json:"follow_up_reminder_hour"`
	EmailNotifications     *bool            `json:"email_notifications"`
	Locale                 *string          `json:"locale"`
	Timezone               *string          `json:"timezone"`
}
