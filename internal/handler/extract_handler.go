package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docreader/internal/domain"
	"docreader/internal/service"
)

// ExtractHandler handles the document extraction endpoint.
type ExtractHandler struct {
	extractService service.ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

// Extract handles POST /extract
// @Summary Extract structured data from an invoice document
// @Description Upload a PDF or image; the AI gateway extracts invoice fields (or a generic table with mode=table) and the result is normalized
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice document (PDF or image)"
// @Param provider formData string false "Extraction provider (gemini, openai, claude)"
// @Param mode formData string false "Extraction mode (invoice or table)" default(invoice)
// @Success 200 {object} APIResponse "Normalized extraction result"
// @Failure 400 {object} APIResponse "Missing file, unsupported type, or unreadable document"
// @Failure 500 {object} APIResponse "Gateway failure or unrecoverable model output"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "no file was uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "could not read uploaded file")
		return
	}

	input := service.ExtractInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Provider:    c.PostForm("provider"),
	}

	mode := domain.ExtractMode(c.DefaultPostForm("mode", string(domain.ExtractModeInvoice)))
	if mode == domain.ExtractModeTable {
		table, err := h.extractService.ExtractTable(c.Request.Context(), input)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, table)
		return
	}

	inv, err := h.extractService.ExtractInvoice(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}
