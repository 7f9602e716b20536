package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/g2rism/backoffice-api/pkg/cache"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// saleTransitions defines the allowed status moves for a sale
var saleTransitions = map[enum.SaleStatus][]enum.SaleStatus{
	enum.SaleStatusDraft:    {enum.SaleStatusSent},
	enum.SaleStatusSent:     {enum.SaleStatusApproved, enum.SaleStatusRejected},
	enum.SaleStatusApproved: {enum.SaleStatusInvoiced},
	enum.SaleStatusRejected: {enum.SaleStatusSent},
	enum.SaleStatusInvoiced: {},
}

// SaleService handles sale quotation operations
type SaleService struct {
	saleRepo     repository.SaleRepository
	leadRepo     repository.LeadRepository
	settingsRepo repository.SettingsRepository
	cache        *cache.Cache
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, leadRepo repository.LeadRepository, settingsRepo repository.SettingsRepository, c *cache.Cache) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		leadRepo:     leadRepo,
		settingsRepo: settingsRepo,
		cache:        c,
	}
}

// SaleItemInput represents one line item of a sale
type SaleItemInput struct {
	Destination string
	Description string
	Travelers   int
	UnitPrice   decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	LeadID     *uuid.UUID
	ClientName string
	SellerID   uuid.UUID
	Date       time.Time
	TravelDate *time.Time
	Currency   string
	Note       *string
	Discount   decimal.Decimal
	Tax        *decimal.Decimal
	Items      []SaleItemInput
}

// CreateSale creates a draft quotation. When tax is not given it is derived
// from the agency tax percentage.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	if input.Discount.IsNegative() {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	clientName := input.ClientName
	if input.LeadID != nil {
		lead, err := s.leadRepo.GetByID(ctx, *input.LeadID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, apperror.NewNotFoundError("Lead")
		}
		if clientName == "" {
			clientName = lead.FullName
		}
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	code, err := s.saleRepo.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	sale := &entity.Sale{
		Code:       code,
		LeadID:     input.LeadID,
		ClientName: clientName,
		SellerID:   input.SellerID,
		Date:       date,
		TravelDate: input.TravelDate,
		Currency:   input.Currency,
		Status:     enum.SaleStatusDraft,
		Note:       input.Note,
		Discount:   input.Discount,
	}
	if sale.Currency == "" {
		sale.Currency = "COP"
	}

	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	sale.Recalculate()

	if input.Tax != nil {
		if input.Tax.IsNegative() {
			return nil, apperror.NewBadRequestError("Tax cannot be negative")
		}
		sale.Tax = *input.Tax
	} else {
		sale.Tax = s.defaultTax(ctx, sale.Subtotal.Sub(sale.Discount))
	}
	sale.Recalculate()

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func buildItems(inputs []SaleItemInput) ([]entity.SaleItem, error) {
	items := make([]entity.SaleItem, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Destination) == "" {
			return nil, apperror.NewBadRequestError("Item destination is required")
		}
		if in.Travelers < 1 {
			return nil, apperror.NewBadRequestError("Item travelers must be at least 1")
		}
		if in.UnitPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Item unit price cannot be negative")
		}
		items = append(items, entity.SaleItem{
			Destination: in.Destination,
			Description: in.Description,
			Travelers:   in.Travelers,
			UnitPrice:   in.UnitPrice,
		})
	}
	return items, nil
}

// defaultTax applies the configured agency tax percentage to a base amount
func (s *SaleService) defaultTax(ctx context.Context, base decimal.Decimal) decimal.Decimal {
	if base.IsNegative() {
		return decimal.Zero
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return decimal.Zero
	}
	return base.Mul(settings.TaxPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// GetSale retrieves a sale with items and lead
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with optional search, status and seller filters
func (s *SaleService) ListSales(ctx context.Context, params *pagination.PaginationParams, search, status string, sellerID *uuid.UUID) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params, search, status, sellerID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// UpdateSaleInput represents the update sale input; nil fields are unchanged
type UpdateSaleInput struct {
	ID         uuid.UUID
	ClientName *string
	TravelDate *time.Time
	Note       *string
	Discount   *decimal.Decimal
	Tax        *decimal.Decimal
	Items      []SaleItemInput
}

// UpdateSale edits a draft or rejected sale and recomputes its totals
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if sale.Status != enum.SaleStatusDraft && sale.Status != enum.SaleStatusRejected {
		return nil, apperror.NewBadRequestError("Only draft or rejected sales can be edited")
	}

	if input.ClientName != nil {
		if strings.TrimSpace(*input.ClientName) == "" {
			return nil, apperror.NewBadRequestError("Client name is required")
		}
		sale.ClientName = *input.ClientName
	}
	if input.TravelDate != nil {
		sale.TravelDate = input.TravelDate
	}
	if input.Note != nil {
		sale.Note = input.Note
	}
	if input.Discount != nil {
		if input.Discount.IsNegative() {
			return nil, apperror.NewBadRequestError("Discount cannot be negative")
		}
		sale.Discount = *input.Discount
	}
	if input.Tax != nil {
		if input.Tax.IsNegative() {
			return nil, apperror.NewBadRequestError("Tax cannot be negative")
		}
		sale.Tax = *input.Tax
	}
	if input.Items != nil {
		if len(input.Items) == 0 {
			return nil, apperror.NewBadRequestError("At least one item is required")
		}
		items, err := buildItems(input.Items)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	sale.Recalculate()

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// ChangeSaleStatus moves a sale along the quotation lifecycle. Invoicing a
// sale linked to a lead updates the lead's purchase aggregates.
func (s *SaleService) ChangeSaleStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) (*entity.Sale, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid sale status")
	}

	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(sale.Status, status) {
		return nil, apperror.NewBadRequestError("Cannot move sale from " + sale.Status.String() + " to " + status.String())
	}

	sale.Status = status
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	if status == enum.SaleStatusInvoiced && sale.LeadID != nil {
		if lead, err := s.leadRepo.GetByID(ctx, *sale.LeadID); err == nil && lead != nil {
			total, _ := sale.Total.Float64()
			lead.TotalSpent += total
			lead.TotalBookings++
			if err := s.leadRepo.Update(ctx, lead); err != nil {
				log.Printf("failed to update lead %s aggregates for invoiced sale %s: %v", lead.Code, sale.Code, err)
			}
		}
		s.cache.Delete(ctx, dashboardStatsKey, dashboardOverviewKey)
	}

	return sale, nil
}

func transitionAllowed(from, to enum.SaleStatus) bool {
	for _, allowed := range saleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DeleteSale removes a draft sale
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return err
	}

	if sale.Status != enum.SaleStatusDraft {
		return apperror.NewBadRequestError("Only draft sales can be deleted")
	}

	return s.saleRepo.Delete(ctx, id)
}
