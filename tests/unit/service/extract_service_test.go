package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docreader/internal/domain"
	"docreader/internal/port"
	"docreader/internal/service"
	"docreader/mocks"
)

func newExtractService(gen *mocks.MockTextGenerator, pdfText *mocks.MockPDFTextExtractor) service.ExtractService {
	return service.NewExtractService(
		map[string]port.TextGenerator{"gemini": gen},
		"gemini",
		pdfText,
	)
}

func TestExtractInvoice_Image_Success(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	modelOutput := "```json\n" + `{
		"vendor": {"name": "Acme Corp", "address": "1 Main St", "taxId": ""},
		"invoice": {"number": "INV-001", "date": "2024-01-15", "currency": "", "subtotal": 100, "taxPercent": 0, "total": 100},
		"lineItems": [{"description": "Widget", "unitPrice": 25, "quantity": 4, "total": 1}]
	}` + "\n```"

	mockGen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.ImageMIME == "image/png" && len(in.ImageBytes) > 0 && in.Prompt != ""
	})).Return(modelOutput, nil)

	inv, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4E, 0x47},
	})

	require.NoError(t, err)
	assert.Equal(t, "scan.png", inv.FileName)
	assert.Equal(t, "Acme Corp", inv.Vendor.Name)
	// Missing currency falls back to the default symbol
	assert.Equal(t, "$", inv.Details.Currency)
	require.Len(t, inv.LineItems, 1)
	// Line total is recomputed, not taken from the model
	assert.Equal(t, 100.0, inv.LineItems[0].Total)
	assert.NotEmpty(t, inv.LineItems[0].ID)

	mockGen.AssertExpectations(t)
	mockPDF.AssertNotCalled(t, "Text", mock.Anything)
}

func TestExtractInvoice_PDF_Success(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	pdfData := []byte("%PDF-1.4 test")
	mockPDF.On("Text", pdfData).Return("Invoice INV-9 from Acme, total 50", nil)
	mockGen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		// PDFs travel as text appended to the prompt, never as image bytes
		return in.ImageBytes == nil &&
			strings.Contains(in.Prompt, "Invoice INV-9 from Acme, total 50")
	})).Return(`{"invoice":{"number":"INV-9"}}`, nil)

	inv, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "doc.pdf",
		ContentType: "application/pdf",
		Data:        pdfData,
	})

	require.NoError(t, err)
	assert.Equal(t, "INV-9", inv.Details.Number)
	mockPDF.AssertExpectations(t)
	mockGen.AssertExpectations(t)
}

func TestExtractInvoice_UnsupportedType_GatewayNeverCalled(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hello"),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractInvoice_PDFExtractionFails(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockPDF.On("Text", mock.Anything).Return("", errors.New("broken xref table"))

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "bad.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})

	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractInvoice_PDFEmptyTextLayer(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockPDF.On("Text", mock.Anything).Return("   \n\t ", nil)

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scanned.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})

	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractInvoice_UnknownProvider(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89},
		Provider:    "mistral",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractInvoice_EmptyProviderUsesDefault(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockGen.On("Generate", mock.Anything, mock.Anything).Return(`{"invoice":{"number":"X"}}`, nil)

	inv, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89},
	})

	require.NoError(t, err)
	assert.Equal(t, "X", inv.Details.Number)
	mockGen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestExtractInvoice_MalformedModelOutput(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockGen.On("Generate", mock.Anything, mock.Anything).Return("I cannot read this document.", nil)

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89},
	})

	assert.ErrorIs(t, err, domain.ErrMalformedModelOutput)
	// One call, no retry
	mockGen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestExtractInvoice_GatewayError(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockGen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("api error (status 429)"))

	_, err := svc.ExtractInvoice(context.Background(), service.ExtractInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "extraction gateway")
	mockGen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestExtractTable_Success(t *testing.T) {
	mockGen := new(mocks.MockTextGenerator)
	mockPDF := new(mocks.MockPDFTextExtractor)
	svc := newExtractService(mockGen, mockPDF)

	mockGen.On("Generate", mock.Anything, mock.Anything).
		Return(`{"headers":["Name","Amount"],"rows":[["Alpha",10]]}`, nil)

	table, err := svc.ExtractTable(context.Background(), service.ExtractInput{
		FileName:    "report.png",
		ContentType: "image/png",
		Data:        []byte{0x89},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 1)
}
