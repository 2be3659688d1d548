package port

import "context"

// GenerateInput carries one completion request to an LLM provider. When
// ImageBytes is set the provider sends it inline alongside the prompt;
// otherwise the prompt already embeds the document text.
type GenerateInput struct {
	Prompt     string
	ImageBytes []byte
	ImageMIME  string
}

// TextGenerator abstracts the generative-AI completion API. The returned
// string is the model's raw text and must not be interpreted as structured
// data before it has been through JSON recovery.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
