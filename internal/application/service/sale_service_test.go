package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	infraRepo "github.com/g2rism/backoffice-api/internal/infrastructure/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(t *testing.T) (*SaleService, *LeadService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	settingsRepo := infraRepo.NewSettingsRepository(db)
	require.NoError(t, settingsRepo.Create(context.Background(), &entity.AgencySettings{
		AgencyName:    "G2RISM",
		TaxPercentage: decimal.NewFromInt(19),
	}))

	leadRepo := infraRepo.NewLeadRepository(db)
	saleSvc := NewSaleService(infraRepo.NewSaleRepository(db), leadRepo, settingsRepo, disabledCache())
	leadSvc := NewLeadService(leadRepo, disabledCache())
	return saleSvc, leadSvc, db
}

func draftSale(t *testing.T, svc *SaleService, leadID *uuid.UUID) *entity.Sale {
	t.Helper()
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		LeadID:     leadID,
		ClientName: "Maria Garcia",
		SellerID:   uuid.New(),
		Currency:   "COP",
		Items: []SaleItemInput{
			{Destination: "Cartagena", Description: "Paquete 4 noches", Travelers: 2, UnitPrice: decimal.NewFromInt(1500000)},
		},
	})
	require.NoError(t, err)
	return sale
}

func TestCreateSale_ComputesTotalsWithDefaultTax(t *testing.T) {
	svc, _, _ := newSaleService(t)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		ClientName: "Maria Garcia",
		SellerID:   uuid.New(),
		Discount:   decimal.NewFromInt(100000),
		Items: []SaleItemInput{
			{Destination: "Cartagena", Travelers: 2, UnitPrice: decimal.NewFromInt(1500000)},
			{Destination: "San Andrés", Travelers: 1, UnitPrice: decimal.NewFromInt(800000)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "V000001", sale.Code)
	assert.Equal(t, enum.SaleStatusDraft, sale.Status)
	assert.Equal(t, "COP", sale.Currency)

	// subtotal 3.800.000, discount 100.000, 19% tax on 3.700.000
	assert.True(t, sale.Subtotal.Equal(decimal.NewFromInt(3800000)), "subtotal %s", sale.Subtotal)
	assert.True(t, sale.Tax.Equal(decimal.NewFromInt(703000)), "tax %s", sale.Tax)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(4403000)), "total %s", sale.Total)
}

func TestCreateSale_ExplicitTaxOverridesDefault(t *testing.T) {
	svc, _, _ := newSaleService(t)

	tax := decimal.Zero
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		ClientName: "Maria Garcia",
		SellerID:   uuid.New(),
		Tax:        &tax,
		Items: []SaleItemInput{
			{Destination: "Cartagena", Travelers: 1, UnitPrice: decimal.NewFromInt(1000000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, sale.Tax.IsZero())
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(1000000)))
}

func TestCreateSale_Validation(t *testing.T) {
	svc, _, _ := newSaleService(t)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, &CreateSaleInput{ClientName: "Maria", SellerID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.CreateSale(ctx, &CreateSaleInput{
		ClientName: "Maria",
		SellerID:   uuid.New(),
		Items:      []SaleItemInput{{Destination: "", Travelers: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.CreateSale(ctx, &CreateSaleInput{
		ClientName: "Maria",
		SellerID:   uuid.New(),
		Items:      []SaleItemInput{{Destination: "Cartagena", Travelers: 0, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateSale_FillsClientNameFromLead(t *testing.T) {
	svc, leadSvc, _ := newSaleService(t)
	lead := createLead(t, leadSvc, "Maria", "Garcia")

	sale := draftSale(t, svc, &lead.ID)
	assert.Equal(t, "Maria Garcia", sale.ClientName)

	missing := uuid.New()
	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		LeadID:   &missing,
		SellerID: uuid.New(),
		Items: []SaleItemInput{
			{Destination: "Cartagena", Travelers: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestChangeSaleStatus_FollowsLifecycle(t *testing.T) {
	svc, _, _ := newSaleService(t)
	ctx := context.Background()
	sale := draftSale(t, svc, nil)

	// draft cannot jump straight to approved
	_, err := svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusApproved)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	sale, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusSent, sale.Status)

	sale, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusRejected)
	require.NoError(t, err)

	// rejected quotations can be corrected and sent again
	sale, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusSent)
	require.NoError(t, err)

	sale, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusApproved)
	require.NoError(t, err)

	sale, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusInvoiced)
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusInvoiced, sale.Status)

	_, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusDraft)
	require.Error(t, err)
}

func TestChangeSaleStatus_InvoicingUpdatesLeadAggregates(t *testing.T) {
	svc, leadSvc, _ := newSaleService(t)
	ctx := context.Background()
	lead := createLead(t, leadSvc, "Maria", "Garcia")
	sale := draftSale(t, svc, &lead.ID)

	for _, status := range []enum.SaleStatus{enum.SaleStatusSent, enum.SaleStatusApproved, enum.SaleStatusInvoiced} {
		var err error
		sale, err = svc.ChangeSaleStatus(ctx, sale.ID, status)
		require.NoError(t, err)
	}

	reloaded, err := leadSvc.GetLead(ctx, lead.ID)
	require.NoError(t, err)

	total, _ := sale.Total.Float64()
	assert.Equal(t, total, reloaded.TotalSpent)
	assert.Equal(t, 1, reloaded.TotalBookings)

	// a second invoiced sale accumulates on top of the first
	second := draftSale(t, svc, &lead.ID)
	for _, status := range []enum.SaleStatus{enum.SaleStatusSent, enum.SaleStatusApproved, enum.SaleStatusInvoiced} {
		var err error
		second, err = svc.ChangeSaleStatus(ctx, second.ID, status)
		require.NoError(t, err)
	}

	reloaded, err = leadSvc.GetLead(ctx, lead.ID)
	require.NoError(t, err)

	secondTotal, _ := second.Total.Float64()
	assert.Equal(t, total+secondTotal, reloaded.TotalSpent)
	assert.Equal(t, 2, reloaded.TotalBookings)
}

func TestUpdateSale_OnlyDraftOrRejected(t *testing.T) {
	svc, _, _ := newSaleService(t)
	ctx := context.Background()
	sale := draftSale(t, svc, nil)

	newName := "Ana Lopez"
	updated, err := svc.UpdateSale(ctx, &UpdateSaleInput{ID: sale.ID, ClientName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", updated.ClientName)

	_, err = svc.ChangeSaleStatus(ctx, sale.ID, enum.SaleStatusSent)
	require.NoError(t, err)

	_, err = svc.UpdateSale(ctx, &UpdateSaleInput{ID: sale.ID, ClientName: &newName})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUpdateSale_ReplacingItemsRecalculatesTotals(t *testing.T) {
	svc, _, _ := newSaleService(t)
	ctx := context.Background()
	sale := draftSale(t, svc, nil)

	updated, err := svc.UpdateSale(ctx, &UpdateSaleInput{
		ID: sale.ID,
		Items: []SaleItemInput{
			{Destination: "Eje Cafetero", Travelers: 4, UnitPrice: decimal.NewFromInt(500000)},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(2000000)), "subtotal %s", updated.Subtotal)

	reloaded, err := svc.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Eje Cafetero", reloaded.Items[0].Destination)
}

func TestDeleteSale_OnlyDraft(t *testing.T) {
	svc, _, _ := newSaleService(t)
	ctx := context.Background()

	sale := draftSale(t, svc, nil)
	require.NoError(t, svc.DeleteSale(ctx, sale.ID))
	_, err := svc.GetSale(ctx, sale.ID)
	require.Error(t, err)

	sent := draftSale(t, svc, nil)
	_, err = svc.ChangeSaleStatus(ctx, sent.ID, enum.SaleStatusSent)
	require.NoError(t, err)
	err = svc.DeleteSale(ctx, sent.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
