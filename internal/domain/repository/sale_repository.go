package repository

import (
	"context"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID loads the sale with its items and lead
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search, status string, sellerID *uuid.UUID) ([]entity.Sale, int64, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	NextCode(ctx context.Context) (string, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// TotalRevenue sums the totals of invoiced sales in the given period
	TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
