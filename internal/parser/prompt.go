package parser

import "docreader/internal/domain"

// DocumentTextDelimiter separates the instruction from extracted PDF text in
// text-only requests.
const DocumentTextDelimiter = "\n\nDocument Text:\n---\n"

// BuildInvoicePrompt returns the extraction prompt for the canonical invoice shape.
func BuildInvoicePrompt() string {
	return `Analyze the following document (which could be an image or text from a PDF) and extract all relevant invoice information.
Return the answer ONLY as a valid JSON object. Do not include any other text or markdown.
The JSON object must have this exact structure:
{
  "vendor": { "name": "string", "address": "string", "taxId": "string" },
  "invoice": { "number": "string", "date": "string", "currency": "string", "subtotal": number, "taxPercent": number, "total": number, "poNumber": "string", "poDate": "string" },
  "lineItems": [{ "description": "string", "unitPrice": number, "quantity": number, "total": number }]
}
If any value is not found, use an empty string "" for strings and 0 for numbers.`
}

// BuildTablePrompt returns the extraction prompt for the generic headers/rows shape.
func BuildTablePrompt() string {
	return `Analyze the document provided (image or text). Identify the main table of data.
Extract the column headers and all the rows of data from that table.
Return the answer ONLY as a valid JSON object with this exact structure:
{
  "headers": ["Header 1", "Header 2", ...],
  "rows": [
    ["Row 1 Cell 1", "Row 1 Cell 2", ...],
    ["Row 2 Cell 1", "Row 2 Cell 2", ...]
  ]
}
Do not include any other text, markdown, or explanations.`
}

// BuildPrompt selects the prompt variant for the given extraction mode.
func BuildPrompt(mode domain.ExtractMode) string {
	if mode == domain.ExtractModeTable {
		return BuildTablePrompt()
	}
	return BuildInvoicePrompt()
}
