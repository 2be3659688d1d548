package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"docreader/internal/domain"
)

const sheetName = "Invoices"

// columns defines the workbook header row.
var columns = []string{
	"File Name",
	"Vendor Name",
	"Vendor Address",
	"Vendor Tax ID",
	"Invoice Number",
	"Invoice Date",
	"Currency",
	"Subtotal",
	"Tax %",
	"Total",
	"PO Number",
	"PO Date",
	"Line Item Count",
	"Created At",
}

// Workbook builds an XLSX workbook with one row per saved invoice, newest
// first (the caller passes invoices in list order).
func Workbook(invoices []domain.Invoice) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for r := range invoices {
		inv := &invoices[r]
		values := []interface{}{
			inv.FileName,
			inv.Vendor.Name,
			inv.Vendor.Address,
			inv.Vendor.TaxID,
			inv.Details.Number,
			inv.Details.Date,
			inv.Details.Currency,
			inv.Details.Subtotal,
			inv.Details.TaxPercent,
			inv.Details.Total,
			inv.Details.PONumber,
			inv.Details.PODate,
			len(inv.LineItems),
			inv.CreatedAt.Format(time.RFC3339),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
