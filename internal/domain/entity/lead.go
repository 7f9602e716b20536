package entity

import (
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact holds a lead's contact details
type Contact struct {
	Email            string              `gorm:"size:255" json:"email"`
	Phone            string              `gorm:"size:50" json:"phone"`
	Mobile           *string             `gorm:"size:50" json:"mobile,omitempty"`
	WhatsApp         *string             `gorm:"size:50" json:"whatsapp,omitempty"`
	PreferredChannel enum.ContactChannel `gorm:"size:20;default:'email'" json:"preferred_channel"`
}

// Address holds a lead's postal address
type Address struct {
	Street     string `gorm:"size:255" json:"street"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	Country    string `gorm:"size:100" json:"country"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
}

// Lead represents a prospective or existing client tracked through the sales pipeline
type Lead struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code string    `gorm:"size:20;unique;not null" json:"code"`

	FirstName      string            `gorm:"size:255;not null" json:"first_name"`
	LastName       string            `gorm:"size:255;not null" json:"last_name"`
	FullName       string            `gorm:"size:255;not null;index" json:"full_name"`
	DocumentType   enum.DocumentType `gorm:"size:20" json:"document_type"`
	DocumentNumber string            `gorm:"size:50" json:"document_number"`
	DateOfBirth    *time.Time        `gorm:"type:date" json:"date_of_birth,omitempty"`

	Contact Contact `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Status     enum.LeadStatus `gorm:"size:20;not null;default:'new';index" json:"status"`
	Source     enum.LeadSource `gorm:"size:20;not null;default:'other'" json:"source"`
	ClientType enum.ClientType `gorm:"size:20;not null;default:'individual'" json:"client_type"`
	Priority   enum.Priority   `gorm:"size:20;not null;default:'medium'" json:"priority"`

	EstimatedValue    float64    `gorm:"type:decimal(15,2);default:0" json:"estimated_value"`
	Probability       int        `gorm:"default:0" json:"probability"`
	TravelDate        *time.Time `gorm:"type:date" json:"travel_date,omitempty"`
	NumberOfTravelers *int       `json:"number_of_travelers,omitempty"`

	AssignedTo uuid.UUID `gorm:"type:uuid;index" json:"assigned_to"`
	Tags       []string  `gorm:"serializer:json" json:"tags"`
	Score      int       `gorm:"default:0" json:"score"`

	LastContactDate  *time.Time `json:"last_contact_date,omitempty"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date,omitempty"`
	ConversionDate   *time.Time `json:"conversion_date,omitempty"`

	// Cached aggregates; total_interactions mirrors len(Interactions) and is
	// maintained by the crm mutation functions
	TotalInteractions int     `gorm:"default:0" json:"total_interactions"`
	TotalSpent        float64 `gorm:"type:decimal(15,2);default:0" json:"total_spent"`
	TotalBookings     int     `gorm:"default:0" json:"total_bookings"`

	CreatedBy uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Child collections, most-recent-first
	Interactions []Interaction `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"interactions"`
	Notes        []Note        `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"notes"`
	Tasks        []Task        `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"tasks"`
	Documents    []Document    `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"documents"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}

// SetTags replaces the lead's tags, dropping duplicates (exact match) while
// keeping first-seen order
func (l *Lead) SetTags(tags []string) {
	seen := make(map[string]bool, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		deduped = append(deduped, tag)
	}
	l.Tags = deduped
}
