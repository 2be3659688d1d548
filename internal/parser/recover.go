package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"docreader/internal/domain"
)

// StripCodeFences removes literal markdown code-fence markers from a model
// response. It does not attempt to parse markdown; it only deletes the
// ```json / ``` tokens the models habitually wrap their output in.
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// RecoverObject salvages a single JSON object from free-form model output.
// After fence stripping it takes the substring from the first '{' to the last
// '}' and parses it. This is a textual heuristic, not a parser: it assumes
// the response contains at most one top-level object and that no stray brace
// appears in prose before the real opening brace.
func RecoverObject(raw string) (map[string]interface{}, error) {
	cleaned := StripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object boundaries in response", domain.ErrMalformedModelOutput)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedModelOutput, err)
	}
	return obj, nil
}

// Truncate shortens a raw model response for logging.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
