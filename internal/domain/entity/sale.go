package entity

import (
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a travel quotation tracked through the sales module
type Sale struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Code       string          `gorm:"size:20;unique;not null" json:"code"`
	LeadID     *uuid.UUID      `gorm:"type:uuid;index" json:"lead_id,omitempty"`
	ClientName string          `gorm:"size:255;not null" json:"client_name"`
	SellerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	Date       time.Time       `gorm:"type:date;not null" json:"date"`
	TravelDate *time.Time      `gorm:"type:date" json:"travel_date,omitempty"`
	Currency   string          `gorm:"size:10;default:'COP'" json:"currency"`
	Status     enum.SaleStatus `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Note       *string         `gorm:"type:text" json:"note,omitempty"`

	Subtotal decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"tax"`
	Discount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount"`
	Total    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Lead  *Lead      `gorm:"foreignKey:LeadID" json:"lead,omitempty"`
	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Recalculate recomputes the subtotal and total from the line items.
// Called on every create and update so the stored totals can never drift
// from the items.
func (s *Sale) Recalculate() {
	subtotal := decimal.Zero
	for i := range s.Items {
		s.Items[i].Subtotal = s.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(s.Items[i].Travelers)))
		subtotal = subtotal.Add(s.Items[i].Subtotal)
	}
	s.Subtotal = subtotal
	s.Total = subtotal.Sub(s.Discount).Add(s.Tax)
}

// SaleItem represents a line item in a sale quotation
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	Destination string          `gorm:"size:255;not null" json:"destination"`
	Description string          `gorm:"type:text" json:"description"`
	Travelers   int             `gorm:"not null;default:1" json:"travelers"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
