package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/application/service"
	"github.com/kipkoechd/fabworks-api/internal/document"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/request"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/response"
)

// DocumentHandler handles invoice, shipping label and quotation document
// HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GetOrderDocument returns the canonical document for an order as JSON
func (h *DocumentHandler) GetOrderDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	doc, err := h.documentService.BuildOrderDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order document built successfully", doc)
}

// PrintOrder prints either the invoice or the shipping label for an
// order. On a printer failure the document is still returned so the
// operator can fall back to the PDF.
func (h *DocumentHandler) PrintOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.PrintOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var (
		doc      *document.OrderDocument
		printErr error
	)
	switch req.Target {
	case "label":
		doc, printErr = h.documentService.PrintLabel(c.Request.Context(), id)
	default:
		doc, printErr = h.documentService.PrintInvoice(c.Request.Context(), id)
	}

	if printErr != nil {
		if doc == nil {
			response.Error(c, printErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Document generated but printing failed",
			"warning": printErr.Error(),
			"data":    doc,
		})
		return
	}

	response.OK(c, "Document printed successfully", doc)
}

// OrderInvoicePDF streams the invoice PDF for an order
func (h *DocumentHandler) OrderInvoicePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	data, err := h.documentService.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="invoice-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// OrderLabelPDF streams the 4x6 shipping label PDF for an order
func (h *DocumentHandler) OrderLabelPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	data, err := h.documentService.LabelPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="label-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetQuotationDocument returns the quotation document as JSON
func (h *DocumentHandler) GetQuotationDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, err := h.documentService.BuildQuotationDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation document built successfully", doc)
}

// PrintQuotation prints a quotation document
func (h *DocumentHandler) PrintQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, printErr := h.documentService.PrintQuotation(c.Request.Context(), id)
	if printErr != nil {
		if doc == nil {
			response.Error(c, printErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Document generated but printing failed",
			"warning": printErr.Error(),
			"data":    doc,
		})
		return
	}

	response.OK(c, "Quotation printed successfully", doc)
}

// QuotationPDF streams the quotation PDF
func (h *DocumentHandler) QuotationPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	data, err := h.documentService.QuotationPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="quotation-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// PrinterStatus returns the current printer connection status
func (h *DocumentHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.documentService.GetPrinterStatus())
}

// TestPrint sends a test page to the printer
func (h *DocumentHandler) TestPrint(c *gin.Context) {
	if err := h.documentService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", nil)
}
