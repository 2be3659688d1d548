package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"docreader/internal/domain"
)

// InvoicePDF renders a saved invoice as a printable A4 PDF: header, vendor
// block, line-item table, grand total.
func InvoicePDF(inv *domain.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Details.Number), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	y := pdf.GetY()
	pdf.MultiCell(95, 6, fmt.Sprintf("From:\n%s\n%s", inv.Vendor.Name, inv.Vendor.Address), "", "L", false)
	pdf.SetXY(105, y)
	pdf.MultiCell(95, 6, fmt.Sprintf("Invoice #: %s\nDate: %s", inv.Details.Number, inv.Details.Date), "", "R", false)
	pdf.Ln(10)

	colWidths := []float64{100, 25, 30, 35}
	headers := []string{"Description", "Qty", "Unit Price", "Total"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.LineItems {
		pdf.CellFormat(colWidths[0], 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%g", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("%.2f", item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("TOTAL: %s%.2f", inv.Details.Currency, inv.Details.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
