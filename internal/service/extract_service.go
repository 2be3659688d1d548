package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"docreader/internal/domain"
	"docreader/internal/normalize"
	"docreader/internal/parser"
	"docreader/internal/port"
)

// ExtractInput is the DTO for extraction requests. Provider is optional; an
// empty value selects the configured default.
type ExtractInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Provider    string
}

// ExtractService runs the extraction pipeline: ingestion, one gateway call,
// JSON recovery, and schema normalization.
type ExtractService interface {
	ExtractInvoice(ctx context.Context, input ExtractInput) (*domain.Invoice, error)
	ExtractTable(ctx context.Context, input ExtractInput) (*domain.TableExtraction, error)
}

type extractService struct {
	generators      map[string]port.TextGenerator
	defaultProvider string
	pdfText         port.PDFTextExtractor
}

// NewExtractService creates a new ExtractService. generators maps provider
// names to configured gateways; defaultProvider must be a key of it.
func NewExtractService(
	generators map[string]port.TextGenerator,
	defaultProvider string,
	pdfText port.PDFTextExtractor,
) ExtractService {
	return &extractService{
		generators:      generators,
		defaultProvider: defaultProvider,
		pdfText:         pdfText,
	}
}

func (s *extractService) ExtractInvoice(ctx context.Context, input ExtractInput) (*domain.Invoice, error) {
	raw, err := s.recover(ctx, input, domain.ExtractModeInvoice)
	if err != nil {
		return nil, err
	}

	inv := normalize.Invoice(raw)
	inv.FileName = input.FileName
	return inv, nil
}

func (s *extractService) ExtractTable(ctx context.Context, input ExtractInput) (*domain.TableExtraction, error) {
	raw, err := s.recover(ctx, input, domain.ExtractModeTable)
	if err != nil {
		return nil, err
	}
	return normalize.Table(raw), nil
}

// recover runs the shared part of the pipeline up to the recovered JSON
// object. Input validation happens before the gateway is touched; the
// gateway is called exactly once and never retried.
func (s *extractService) recover(ctx context.Context, input ExtractInput, mode domain.ExtractMode) (map[string]interface{}, error) {
	gen, err := s.selectGenerator(input.Provider)
	if err != nil {
		return nil, err
	}

	genInput, err := s.buildRequest(input, parser.BuildPrompt(mode))
	if err != nil {
		return nil, err
	}

	rawText, err := gen.Generate(ctx, genInput)
	if err != nil {
		return nil, fmt.Errorf("extraction gateway: %w", err)
	}

	obj, err := parser.RecoverObject(rawText)
	if err != nil {
		// The raw response is logged for diagnosis but never sent to the caller.
		log.Printf("extractService: unrecoverable model response for %q: %s",
			input.FileName, parser.Truncate(rawText, 500))
		return nil, err
	}
	return obj, nil
}

// buildRequest branches on the declared content type: images pass through
// untouched as an inline payload, PDFs are reduced to their text layer.
func (s *extractService) buildRequest(input ExtractInput, prompt string) (port.GenerateInput, error) {
	switch {
	case strings.HasPrefix(input.ContentType, "image/"):
		return port.GenerateInput{
			Prompt:     prompt,
			ImageBytes: input.Data,
			ImageMIME:  input.ContentType,
		}, nil

	case input.ContentType == "application/pdf":
		text, err := s.pdfText.Text(input.Data)
		if err != nil {
			return port.GenerateInput{}, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
		}
		if strings.TrimSpace(text) == "" {
			return port.GenerateInput{}, domain.ErrDocumentUnreadable
		}
		return port.GenerateInput{
			Prompt: prompt + parser.DocumentTextDelimiter + text,
		}, nil

	default:
		return port.GenerateInput{}, domain.ErrUnsupportedFileType
	}
}

func (s *extractService) selectGenerator(provider string) (port.TextGenerator, error) {
	if provider == "" {
		provider = s.defaultProvider
	}
	gen, ok := s.generators[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}
	return gen, nil
}
