package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docreader/internal/config"
	"docreader/internal/domain"
	"docreader/internal/parser"
	"docreader/internal/port"
)

type staticGenerator struct {
	text string
}

func (g *staticGenerator) Generate(_ context.Context, _ port.GenerateInput) (string, error) {
	return g.text, nil
}

func TestNewGenerator_RegisteredProvider(t *testing.T) {
	parser.RegisterProvider("static", func(cfg *config.ProviderConfig) port.TextGenerator {
		return &staticGenerator{text: cfg.DefaultModel}
	})

	gen, err := parser.NewGenerator("static", &config.ProviderConfig{DefaultModel: "fixed-output"})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), port.GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "fixed-output", text)
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	gen, err := parser.NewGenerator("nonexistent", &config.ProviderConfig{})

	assert.Nil(t, gen)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parser provider")
}

func TestBuildPrompt_InvoiceMode(t *testing.T) {
	prompt := parser.BuildPrompt(domain.ExtractModeInvoice)

	assert.Contains(t, prompt, `"vendor"`)
	assert.Contains(t, prompt, `"lineItems"`)
	assert.Contains(t, prompt, "ONLY as a valid JSON object")
}

func TestBuildPrompt_TableMode(t *testing.T) {
	prompt := parser.BuildPrompt(domain.ExtractModeTable)

	assert.Contains(t, prompt, `"headers"`)
	assert.Contains(t, prompt, `"rows"`)
	assert.NotContains(t, prompt, `"lineItems"`)
}
