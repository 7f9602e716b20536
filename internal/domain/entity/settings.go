package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AgencySettings holds the agency-wide configuration edited from the
// settings screen. A single row exists per deployment; it is created with
// defaults on first read.
type AgencySettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Agency identity
	AgencyName   string `gorm:"size:255;default:'G2RISM'" json:"agency_name"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ContactPhone string `gorm:"size:50" json:"contact_phone"`

	// Commercial defaults
	DefaultCurrency        string          `gorm:"size:10;default:'COP'" json:"default_currency"`
	TaxPercentage          decimal.Decimal `gorm:"type:decimal(5,2);default:19" json:"tax_percentage"`
	DefaultLeadProbability int             `gorm:"default:50" json:"default_lead_probability"`

	// Follow-up reminders
	FollowUpReminderHour int  `gorm:"default:8" json:"follow_up_reminder_hour"`
	EmailNotifications   bool `gorm:"default:true" json:"email_notifications"`

	// Localization
	Locale   string `gorm:"size:10;default:'es-CO'" json:"locale"`
	Timezone string `gorm:"size:50;default:'America/Bogota'" json:"timezone"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *AgencySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AgencySettings model
func (AgencySettings) TableName() string {
	return "agency_settings"
}
