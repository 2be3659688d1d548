package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreader/internal/domain"
)

func TestWorkbook(t *testing.T) {
	invoices := []domain.Invoice{
		{
			ID:       uuid.New(),
			FileName: "b.pdf",
			Vendor:   domain.Vendor{Name: "Beta Inc"},
			Details: domain.InvoiceDetails{
				Number:   "INV-002",
				Currency: "$",
				Total:    50,
			},
			LineItems: []domain.LineItem{{ID: "x", Quantity: 1, UnitPrice: 50, Total: 50}},
			CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			FileName:  "a.pdf",
			Vendor:    domain.Vendor{Name: "Acme Corp"},
			Details:   domain.InvoiceDetails{Number: "INV-001", Currency: "$"},
			CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	f, err := Workbook(invoices)
	require.NoError(t, err)

	// Header row
	name, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "File Name", name)

	// First data row preserves list order
	fileName, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", fileName)

	vendor, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", vendor)

	count, err := f.GetCellValue(sheetName, "M2")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := Workbook(nil)
	require.NoError(t, err)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(columns))
}
