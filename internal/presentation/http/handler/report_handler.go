package handler

import (
	"net/http"
	"time"

	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
	contentTypePDF  = "application/pdf"
)

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func sendFile(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ExportLeads downloads the filtered lead list as xlsx or csv
// @Summary Export Leads
// @Tags reports
// @Security BearerAuth
// @Produce application/octet-stream
// @Param format query string false "Export format: xlsx or csv" default(xlsx)
// @Success 200
// @Router /reports/leads [get]
func (h *ReportHandler) ExportLeads(c *gin.Context) {
	var filter crm.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		data, fileName, err := h.reportService.ExportLeadsExcel(c.Request.Context(), filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendFile(c, contentTypeXLSX, fileName, data)
	case "csv":
		data, fileName, err := h.reportService.ExportLeadsCSV(c.Request.Context(), filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendFile(c, contentTypeCSV, fileName, data)
	default:
		response.BadRequest(c, "Unsupported export format")
	}
}

// ExportSales downloads the sales of a period as an xlsx workbook
// @Summary Export Sales
// @Tags reports
// @Security BearerAuth
// @Produce application/octet-stream
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Success 200
// @Router /reports/sales [get]
func (h *ReportHandler) ExportSales(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	data, fileName, err := h.reportService.ExportSalesExcel(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, fileName, data)
}

// SalePDF downloads a sale as a printable quotation document
// @Summary Sale Quotation PDF
// @Tags reports
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Sale ID"
// @Success 200
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id}/pdf [get]
func (h *ReportHandler) SalePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	data, fileName, err := h.reportService.SaleQuotationPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, contentTypePDF, fileName, data)
}
