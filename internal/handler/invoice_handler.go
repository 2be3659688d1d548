package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreader/internal/domain"
	"docreader/internal/export"
	"docreader/internal/service"
)

// InvoiceHandler handles invoice CRUD and export endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /invoices
// @Summary Save an invoice
// @Description Persists a reviewed invoice; line totals are recalculated server-side
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body domain.Invoice true "Invoice to save"
// @Success 201 {object} APIResponse "Saved invoice with assigned id"
// @Failure 400 {object} APIResponse "Invalid payload or missing fileName"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var inv domain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid invoice payload")
		return
	}

	saved, err := h.invoiceService.Create(c.Request.Context(), &inv)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, saved)
}

// List handles GET /invoices
// @Summary List saved invoices
// @Description Returns all saved invoices, newest first
// @Tags invoices
// @Produce json
// @Success 200 {object} APIResponse "Invoices in reverse chronological order"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// GetByID handles GET /invoices/:id
// @Summary Get a saved invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} APIResponse "The invoice"
// @Failure 400 {object} APIResponse "Malformed id"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invoice id must be a valid UUID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// Delete handles DELETE /invoices/:id
// @Summary Delete a saved invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} APIResponse "Deletion confirmation"
// @Failure 400 {object} APIResponse "Malformed id"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invoice id must be a valid UUID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// DownloadPDF handles GET /invoices/:id/pdf
// @Summary Re-export a saved invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary "Rendered PDF"
// @Failure 400 {object} APIResponse "Malformed id"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invoice id must be a valid UUID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	pdfBytes, err := export.InvoicePDF(inv)
	if err != nil {
		HandleError(c, err)
		return
	}

	name := inv.Details.Number
	if name == "" {
		name = inv.ID.String()
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, name))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// DownloadWorkbook handles GET /invoices/export
// @Summary Export all saved invoices as an XLSX workbook
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX workbook"
// @Router /invoices/export [get]
func (h *InvoiceHandler) DownloadWorkbook(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.Workbook(invoices)
	if err != nil {
		HandleError(c, err)
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
