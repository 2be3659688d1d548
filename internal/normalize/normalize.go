// Package normalize turns recovered model JSON of arbitrary shape into the
// canonical invoice structure: every field present, missing strings empty,
// missing numbers zero, and every derived amount recomputed. Normalization is
// idempotent: running it on its own output changes nothing.
package normalize

import (
	"strconv"

	"github.com/google/uuid"

	"docreader/internal/domain"
)

// DefaultCurrency is used when the model supplies no currency symbol.
const DefaultCurrency = "$"

// Invoice maps a recovered JSON object into a fully-populated domain.Invoice.
// The model may omit keys, nest differently, or use wrong types; everything
// is coerced best-effort and defaulted. Line-item totals are always
// recomputed from quantity and unit price, never taken from the model.
func Invoice(raw map[string]interface{}) *domain.Invoice {
	inv := &domain.Invoice{
		LineItems: []domain.LineItem{},
	}

	if vendor := asMap(raw["vendor"]); vendor != nil {
		inv.Vendor = domain.Vendor{
			Name:    asString(vendor["name"]),
			Address: asString(vendor["address"]),
			TaxID:   asString(vendor["taxId"]),
		}
	}

	if details := asMap(raw["invoice"]); details != nil {
		inv.Details = domain.InvoiceDetails{
			Number:     asString(details["number"]),
			Date:       asString(details["date"]),
			Currency:   asString(details["currency"]),
			Subtotal:   asNumber(details["subtotal"]),
			TaxPercent: asNumber(details["taxPercent"]),
			Total:      asNumber(details["total"]),
			PONumber:   asString(details["poNumber"]),
			PODate:     asString(details["poDate"]),
		}
	}
	if inv.Details.Currency == "" {
		inv.Details.Currency = DefaultCurrency
	}

	if items, ok := raw["lineItems"].([]interface{}); ok {
		for _, el := range items {
			item := asMap(el)
			if item == nil {
				continue
			}
			inv.LineItems = append(inv.LineItems, domain.LineItem{
				ID:          asString(item["id"]),
				Description: asString(item["description"]),
				UnitPrice:   asNumber(item["unitPrice"]),
				Quantity:    asNumber(item["quantity"]),
			})
		}
	}
	Recalculate(inv.LineItems)

	return inv
}

// Recalculate derives each line total from quantity and unit price and
// assigns a list-identity token to items that lack one. It is the single
// reconciliation point: applied after extraction, and again on every create,
// so a total supplied by the model or the client never survives.
func Recalculate(items []domain.LineItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].Total = items[i].Quantity * items[i].UnitPrice
	}
}

// Table maps a recovered JSON object into the generic headers/rows shape.
// Header cells are coerced to strings; row cells keep whatever type the
// model produced.
func Table(raw map[string]interface{}) *domain.TableExtraction {
	table := &domain.TableExtraction{
		Headers: []string{},
		Rows:    [][]interface{}{},
	}

	if headers, ok := raw["headers"].([]interface{}); ok {
		for _, h := range headers {
			table.Headers = append(table.Headers, asString(h))
		}
	}
	if rows, ok := raw["rows"].([]interface{}); ok {
		for _, r := range rows {
			if cells, ok := r.([]interface{}); ok {
				table.Rows = append(table.Rows, cells)
			}
		}
	}

	return table
}

// EmptyInvoice returns the blank in-memory template created the moment a
// file is chosen: everything zeroed except the file name, one editable line
// row with quantity 1.
func EmptyInvoice(fileName string) *domain.Invoice {
	return &domain.Invoice{
		FileName: fileName,
		Details:  domain.InvoiceDetails{Currency: DefaultCurrency},
		LineItems: []domain.LineItem{
			{ID: uuid.New().String(), Quantity: 1},
		},
	}
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func asNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
