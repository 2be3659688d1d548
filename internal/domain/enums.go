package domain

// ExtractMode selects which extraction schema the prompt asks for.
type ExtractMode string

const (
	// ExtractModeInvoice requests the canonical vendor/invoice/lineItems shape.
	ExtractModeInvoice ExtractMode = "invoice"
	// ExtractModeTable requests the generic headers/rows shape.
	ExtractModeTable ExtractMode = "table"
)

// Provider names accepted in the optional "provider" form field on /extract.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)
