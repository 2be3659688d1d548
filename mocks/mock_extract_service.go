package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docreader/internal/domain"
	"docreader/internal/service"
)

// MockExtractService is a mock implementation of service.ExtractService.
type MockExtractService struct {
	mock.Mock
}

func (m *MockExtractService) ExtractInvoice(ctx context.Context, input service.ExtractInput) (*domain.Invoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockExtractService) ExtractTable(ctx context.Context, input service.ExtractInput) (*domain.TableExtraction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableExtraction), args.Error(1)
}
