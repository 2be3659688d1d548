package parser

import (
	"fmt"

	"docreader/internal/config"
	"docreader/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) port.TextGenerator

// registry of provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator for the named provider.
func NewGenerator(name string, cfg *config.ProviderConfig) (port.TextGenerator, error) {
	factory, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown parser provider: %s", name)
	}
	return factory(cfg), nil
}
