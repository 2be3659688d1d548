package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"docreader/internal/domain"
	"docreader/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceRow maps the invoices table; the nested document parts live in
// JSONB columns.
type invoiceRow struct {
	ID        uuid.UUID       `db:"id"`
	FileName  string          `db:"file_name"`
	Vendor    json.RawMessage `db:"vendor"`
	Details   json.RawMessage `db:"details"`
	LineItems json.RawMessage `db:"line_items"`
	CreatedAt time.Time       `db:"created_at"`
}

func toRow(inv *domain.Invoice) (*invoiceRow, error) {
	vendor, err := json.Marshal(inv.Vendor)
	if err != nil {
		return nil, fmt.Errorf("marshaling vendor: %w", err)
	}
	details, err := json.Marshal(inv.Details)
	if err != nil {
		return nil, fmt.Errorf("marshaling invoice details: %w", err)
	}
	items := inv.LineItems
	if items == nil {
		items = []domain.LineItem{}
	}
	lineItems, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshaling line items: %w", err)
	}
	return &invoiceRow{
		ID:        inv.ID,
		FileName:  inv.FileName,
		Vendor:    vendor,
		Details:   details,
		LineItems: lineItems,
		CreatedAt: inv.CreatedAt,
	}, nil
}

func fromRow(row *invoiceRow) (*domain.Invoice, error) {
	inv := &domain.Invoice{
		ID:        row.ID,
		FileName:  row.FileName,
		LineItems: []domain.LineItem{},
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Vendor, &inv.Vendor); err != nil {
		return nil, fmt.Errorf("unmarshaling vendor: %w", err)
	}
	if err := json.Unmarshal(row.Details, &inv.Details); err != nil {
		return nil, fmt.Errorf("unmarshaling invoice details: %w", err)
	}
	if err := json.Unmarshal(row.LineItems, &inv.LineItems); err != nil {
		return nil, fmt.Errorf("unmarshaling line items: %w", err)
	}
	return inv, nil
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	row, err := toRow(inv)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	query := `INSERT INTO invoices (id, file_name, vendor, details, line_items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.FileName, row.Vendor, row.Details, row.LineItems, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, file_name, vendor, details, line_items, created_at FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return fromRow(&row)
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	var rows []invoiceRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, file_name, vendor, details, line_items, created_at
		 FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}

	invoices := make([]domain.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := fromRow(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("invoiceRepo.List: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	return invoices, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
