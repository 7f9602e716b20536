package handler

import (
	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/request"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func saleItems(items []request.SaleItemRequest) []service.SaleItemInput {
	inputs := make([]service.SaleItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.SaleItemInput{
			Destination: item.Destination,
			Description: item.Description,
			Travelers:   item.Travelers,
			UnitPrice:   item.UnitPrice,
		})
	}
	return inputs
}

// Create handles sale creation
// @Summary Create Sale
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		LeadID:     req.LeadID,
		ClientName: req.ClientName,
		Date:       req.Date,
		TravelDate: req.TravelDate,
		Currency:   req.Currency,
		Note:       req.Note,
		Discount:   req.Discount,
		Tax:        req.Tax,
		Items:      saleItems(req.Items),
	}
	if userID := GetUserID(c); userID != nil {
		input.SellerID = *userID
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale created successfully", sale)
}

// List handles listing sales with filters
// @Summary List Sales
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by code or client name"
// @Param status query string false "Filter by status"
// @Param seller_id query string false "Filter by seller"
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var sellerID *uuid.UUID
	if raw := c.Query("seller_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid seller ID")
			return
		}
		sellerID = &id
	}

	result, err := h.saleService.ListSales(
		c.Request.Context(),
		PaginationFromQuery(c),
		c.Query("search"),
		c.Query("status"),
		sellerID,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles fetching a single sale
// @Summary Get Sale
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles a partial sale update
// @Summary Update Sale
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param request body request.UpdateSaleRequest true "Sale data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSaleInput{
		ID:         id,
		ClientName: req.ClientName,
		TravelDate: req.TravelDate,
		Note:       req.Note,
		Discount:   req.Discount,
		Tax:        req.Tax,
	}
	if req.Items != nil {
		input.Items = saleItems(req.Items)
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// ChangeStatus moves a sale along the quotation lifecycle
// @Summary Change Sale Status
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param request body request.ChangeSaleStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales/{id}/status [patch]
func (h *SaleHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.ChangeSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.ChangeSaleStatus(c.Request.Context(), id, enum.SaleStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale status updated successfully", sale)
}

// Delete handles sale deletion
// @Summary Delete Sale
// @Tags sales
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 204
// @Failure 400 {object} response.APIResponse
// @Router /sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
