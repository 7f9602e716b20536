package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest represents one line item of a sale
type SaleItemRequest struct {
	Destination string          `json:"destination" binding:"required"`
	Description string          `json:"description"`
	Travelers   int             `json:"travelers" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest represents a create sale request
type CreateSaleRequest struct {
	LeadID     *uuid.UUID        `json:"lead_id"`
	ClientName string            `json:"client_name"`
	Date       time.Time         `json:"date"`
	TravelDate *time.Time        `json:"travel_date"`
	Currency   string            `json:"currency"`
	Note       *string           `json:"note"`
	Discount   decimal.Decimal   `json:"discount"`
	Tax        *decimal.Decimal  `json:"tax"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSaleRequest represents a partial sale update
type UpdateSaleRequest struct {
	ClientName *string           `json:"client_name"`
	TravelDate *time.Time        `json:"travel_date"`
	Note       *string           `json:"note"`
	Discount   *decimal.Decimal  `json:"discount"`
	Tax        *decimal.Decimal  `json:"tax"`
	Items      []SaleItemRequest `json:"items"`
}

// ChangeSaleStatusRequest represents a sale status transition
type ChangeSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
