package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPDFTextExtractor is a mock implementation of port.PDFTextExtractor.
type MockPDFTextExtractor struct {
	mock.Mock
}

func (m *MockPDFTextExtractor) Text(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}
