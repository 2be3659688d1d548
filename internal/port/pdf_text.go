package port

// PDFTextExtractor extracts the text layer from a PDF held in memory.
type PDFTextExtractor interface {
	Text(data []byte) (string, error)
}
