package domain

import "errors"

var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrDocumentUnreadable   = errors.New("could not read text from the document")
	ErrMalformedModelOutput = errors.New("model response is not recoverable as JSON")
	ErrUnknownProvider      = errors.New("unknown extraction provider")
	ErrMissingFileName      = errors.New("fileName is required")
	ErrInvoiceNotFound      = errors.New("invoice not found")
)
