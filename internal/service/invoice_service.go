package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"docreader/internal/domain"
	"docreader/internal/normalize"
	"docreader/internal/port"
)

// InvoiceService defines the invoice CRUD contract.
type InvoiceService interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	repo port.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

// Create validates the payload, stamps identity and creation time, and
// recalculates every line total before storing. Client-supplied totals are
// treated the same way as model-supplied ones: ignored.
func (s *invoiceService) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if inv.FileName == "" {
		return nil, domain.ErrMissingFileName
	}

	inv.ID = uuid.New()
	inv.CreatedAt = time.Now().UTC()
	if inv.LineItems == nil {
		inv.LineItems = []domain.LineItem{}
	}
	normalize.Recalculate(inv.LineItems)

	log.Printf("invoiceService.Create: storing invoice %s (%s, %d line items)",
		inv.ID, inv.FileName, len(inv.LineItems))

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("invoiceService.Delete: deleted invoice %s", id)
	return nil
}
