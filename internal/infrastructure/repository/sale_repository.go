package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	domainRepo "github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Lead").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

// Update replaces the sale row and its items in one transaction
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		if len(sale.Items) > 0 {
			for i := range sale.Items {
				sale.Items[i].SaleID = sale.ID
			}
			if err := tx.Create(&sale.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items", "Lead").Save(sale).Error
	})
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams, search, status string, sellerID *uuid.UUID) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(client_name) LIKE ? OR LOWER(code) LIKE ?", term, term)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Order("date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) NextCode(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&entity.Sale{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("V%06d", count+1), nil
}

func (r *saleRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *saleRepository) TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Select("total").
		Where("status = ?", enum.SaleStatusInvoiced).
		Where("date >= ? AND date <= ?", from, to).
		Find(&sales).Error
	if err != nil {
		return decimal.Zero, err
	}

	revenue := decimal.Zero
	for i := range sales {
		revenue = revenue.Add(sales[i].Total)
	}
	return revenue, nil
}
