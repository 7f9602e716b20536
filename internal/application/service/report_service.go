package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportService builds downloadable exports for the reports screen
type ReportService struct {
	leadRepo     repository.LeadRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
}

// NewReportService creates a new report service
func NewReportService(leadRepo repository.LeadRepository, saleRepo repository.SaleRepository, settingsRepo repository.SettingsRepository) *ReportService {
	return &ReportService{
		leadRepo:     leadRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
	}
}

var leadExportHeaders = []string{
	"Código", "Nombre", "Email", "Teléfono", "Estado", "Origen", "Tipo de cliente",
	"Prioridad", "Valor estimado", "Probabilidad", "Score", "Interacciones",
	"Última interacción", "Próximo seguimiento", "Creado",
}

func leadExportRow(lead *entity.Lead) []interface{} {
	return []interface{}{
		lead.Code, lead.FullName, lead.Contact.Email, lead.Contact.Phone,
		lead.Status.String(), lead.Source.String(), lead.ClientType.String(),
		lead.Priority.String(), lead.EstimatedValue, lead.Probability,
		lead.Score, lead.TotalInteractions,
		formatDatePtr(lead.LastContactDate), formatDatePtr(lead.NextFollowUpDate),
		lead.CreatedAt.Format("2006-01-02"),
	}
}

// ExportLeadsExcel renders the filtered lead list as an xlsx workbook
func (s *ReportService) ExportLeadsExcel(ctx context.Context, filter crm.Filter) ([]byte, string, error) {
	leads, err := s.leadRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx := range leads {
		values := leadExportRow(&leads[rowIdx])
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	endCell, _ := excelize.CoordinatesToCellName(len(leadExportHeaders), len(leads)+1)
	f.AutoFilter(sheet, "A1:"+endCell, []excelize.AutoFilterOptions{})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFileName("leads", "xlsx"), nil
}

// ExportLeadsCSV renders the filtered lead list as a CSV file
func (s *ReportService) ExportLeadsCSV(ctx context.Context, filter crm.Filter) ([]byte, string, error) {
	leads, err := s.leadRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(leadExportHeaders); err != nil {
		return nil, "", err
	}

	for i := range leads {
		values := leadExportRow(&leads[i])
		record := make([]string, len(values))
		for j, value := range values {
			record[j] = fmt.Sprintf("%v", value)
		}
		if err := writer.Write(record); err != nil {
			return nil, "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFileName("leads", "csv"), nil
}

// ExportSalesExcel renders the sales of a period as an xlsx workbook
func (s *ReportService) ExportSalesExcel(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	sales, err := s.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ventas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Código", "Cliente", "Fecha", "Fecha de viaje", "Estado", "Moneda", "Subtotal", "Descuento", "Impuesto", "Total"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx := range sales {
		sale := &sales[rowIdx]
		travelDate := ""
		if sale.TravelDate != nil {
			travelDate = sale.TravelDate.Format("2006-01-02")
		}
		subtotal, _ := sale.Subtotal.Float64()
		discount, _ := sale.Discount.Float64()
		tax, _ := sale.Tax.Float64()
		total, _ := sale.Total.Float64()

		values := []interface{}{
			sale.Code, sale.ClientName, sale.Date.Format("2006-01-02"), travelDate,
			sale.Status.String(), sale.Currency, subtotal, discount, tax, total,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	endCell, _ := excelize.CoordinatesToCellName(len(headers), len(sales)+1)
	f.AutoFilter(sheet, "A1:"+endCell, []excelize.AutoFilterOptions{})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFileName("ventas", "xlsx"), nil
}

// SaleQuotationPDF renders a sale as a printable quotation document
func (s *ReportService) SaleQuotationPDF(ctx context.Context, saleID uuid.UUID) ([]byte, string, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", apperror.NewNotFoundError("Sale")
	}

	agencyName := "G2RISM"
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		agencyName = settings.AgencyName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(agencyName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	title := "Cotización " + sale.Code
	if sale.Status == enum.SaleStatusInvoiced {
		title = "Factura " + sale.Code
	}
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr("Cliente: "+sale.ClientName))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Fecha: "+sale.Date.Format("2006-01-02")))
	pdf.Ln(6)
	if sale.TravelDate != nil {
		pdf.Cell(0, 6, tr("Fecha de viaje: "+sale.TravelDate.Format("2006-01-02")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	colWidths := []float64{60, 55, 20, 27, 28}
	itemHeaders := []string{"Destino", "Descripción", "Viajeros", "Precio unit.", "Subtotal"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range itemHeaders {
		pdf.CellFormat(colWidths[i], 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, item := range sale.Items {
		pdf.CellFormat(colWidths[0], 7, tr(item.Destination), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%d", item.Travelers), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, item.Subtotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	labelWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3]
	totalRow := func(label, value string, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 9)
		}
		pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, value, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	totalRow("Subtotal", sale.Subtotal.StringFixed(2), false)
	totalRow("Descuento", sale.Discount.StringFixed(2), false)
	totalRow("Impuesto", sale.Tax.StringFixed(2), false)
	totalRow("Total "+sale.Currency, sale.Total.StringFixed(2), true)

	if sale.Note != nil && *sale.Note != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr("Nota: "+*sale.Note), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("cotizacion-%s.pdf", sale.Code), nil
}

func exportFileName(prefix, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, time.Now().Format("20060102-150405"), ext)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
