package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vendor holds the issuing party's details as extracted from the document.
type Vendor struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// InvoiceDetails holds the invoice-level header fields.
type InvoiceDetails struct {
	Number     string  `json:"number"`
	Date       string  `json:"date"`
	Currency   string  `json:"currency"`
	Subtotal   float64 `json:"subtotal"`
	TaxPercent float64 `json:"taxPercent"`
	Total      float64 `json:"total"`
	PONumber   string  `json:"poNumber"`
	PODate     string  `json:"poDate"`
}

// LineItem is one row of the invoice's itemized table. ID is a client-facing
// list identity token; Total is always derived from Quantity and UnitPrice,
// never taken from the model's output.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

// Invoice is the persisted entity. Dates and currency stay strings exactly as
// they appear on the document; nothing re-interprets them.
type Invoice struct {
	ID        uuid.UUID      `json:"_id"`
	FileName  string         `json:"fileName"`
	Vendor    Vendor         `json:"vendor"`
	Details   InvoiceDetails `json:"invoice"`
	LineItems []LineItem     `json:"lineItems"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TableExtraction is the generic extraction shape for documents whose main
// table does not follow the invoice schema. It is returned to the caller but
// never persisted.
type TableExtraction struct {
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}
