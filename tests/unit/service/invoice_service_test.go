package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docreader/internal/domain"
	"docreader/internal/service"
	"docreader/mocks"
)

func TestInvoiceService_Create_Success(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv := &domain.Invoice{
		FileName: "scan.pdf",
		LineItems: []domain.LineItem{
			{Description: "Widget", UnitPrice: 25, Quantity: 4, Total: 999},
		},
	}

	saved, err := svc.Create(context.Background(), inv)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, 5*time.Second)
	// Client-supplied totals are discarded and recomputed
	assert.Equal(t, 100.0, saved.LineItems[0].Total)
	assert.NotEmpty(t, saved.LineItems[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_MissingFileName(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	_, err := svc.Create(context.Background(), &domain.Invoice{})

	assert.ErrorIs(t, err, domain.ErrMissingFileName)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_NilLineItems(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	saved, err := svc.Create(context.Background(), &domain.Invoice{FileName: "scan.pdf"})

	require.NoError(t, err)
	assert.NotNil(t, saved.LineItems)
	assert.Empty(t, saved.LineItems)
}

func TestInvoiceService_Create_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Create(context.Background(), &domain.Invoice{FileName: "scan.pdf"})

	assert.Error(t, err)
}

func TestInvoiceService_GetByID(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id, FileName: "a.pdf"}, nil)

	inv, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, inv.ID)
}

func TestInvoiceService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceService_List(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	newer := domain.Invoice{ID: uuid.New(), FileName: "b.pdf", CreatedAt: time.Now()}
	older := domain.Invoice{ID: uuid.New(), FileName: "a.pdf", CreatedAt: time.Now().Add(-time.Hour)}
	mockRepo.On("List", mock.Anything).Return([]domain.Invoice{newer, older}, nil)

	invoices, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	// Repository order (newest first) is preserved
	assert.Equal(t, "b.pdf", invoices[0].FileName)
	assert.Equal(t, "a.pdf", invoices[1].FileName)
}

func TestInvoiceService_Delete(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestInvoiceService_Delete_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockInvoiceRepository)
	svc := service.NewInvoiceService(mockRepo)

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(domain.ErrInvoiceNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
