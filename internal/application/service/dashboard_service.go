package service

import (
	"context"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/cache"
)

// dashboardOverviewKey caches the full dashboard payload; dropped together
// with the stats key on lead mutations and refreshed by TTL otherwise
const dashboardOverviewKey = "dashboard:overview"

// DashboardService aggregates the back-office dashboard
type DashboardService struct {
	leadRepo     repository.LeadRepository
	saleRepo     repository.SaleRepository
	employeeRepo repository.EmployeeRepository
	cache        *cache.Cache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	leadRepo repository.LeadRepository,
	saleRepo repository.SaleRepository,
	employeeRepo repository.EmployeeRepository,
	c *cache.Cache,
) *DashboardService {
	return &DashboardService{
		leadRepo:     leadRepo,
		saleRepo:     saleRepo,
		employeeRepo: employeeRepo,
		cache:        c,
	}
}

// DashboardStats represents the dashboard payload
type DashboardStats struct {
	CRM crm.Stats `json:"crm"`

	ActiveEmployees int64 `json:"active_employees"`

	PendingQuotations int64   `json:"pending_quotations"`
	InvoicedSales     int64   `json:"invoiced_sales"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	YearlyRevenue     float64 `json:"yearly_revenue"`
}

// GetDashboardStats returns the dashboard aggregation, served from cache
// when warm
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.cache.Get(ctx, dashboardOverviewKey, &cached) {
		return &cached, nil
	}

	stats := &DashboardStats{}

	leads, err := s.leadRepo.ListAll(ctx, crm.Filter{})
	if err != nil {
		return nil, err
	}
	stats.CRM = crm.ComputeStats(leads)

	activeEmployees, err := s.employeeRepo.CountByStatus(ctx, enum.EmployeeStatusActive.String())
	if err != nil {
		return nil, err
	}
	stats.ActiveEmployees = activeEmployees

	pending, err := s.saleRepo.CountByStatus(ctx, enum.SaleStatusSent.String())
	if err != nil {
		return nil, err
	}
	stats.PendingQuotations = pending

	invoiced, err := s.saleRepo.CountByStatus(ctx, enum.SaleStatusInvoiced.String())
	if err != nil {
		return nil, err
	}
	stats.InvoicedSales = invoiced

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	monthly, err := s.saleRepo.TotalRevenue(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue, _ = monthly.Float64()

	yearly, err := s.saleRepo.TotalRevenue(ctx, startOfYear, now)
	if err != nil {
		return nil, err
	}
	stats.YearlyRevenue, _ = yearly.Float64()

	s.cache.Set(ctx, dashboardOverviewKey, stats, 5*time.Minute)
	return stats, nil
}
