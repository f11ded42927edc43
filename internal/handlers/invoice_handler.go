package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService services.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Generate handles POST /invoice/generate
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req models.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoice, err := h.invoiceService.Generate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "invoice generated", "invoice": invoice})
}

// GetByCampaign handles POST /invoice/by-campaignId
func (h *InvoiceHandler) GetByCampaign(c *gin.Context) {
	var req struct {
		CampaignID string `json:"campaignId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoices, err := h.invoiceService.GetByCampaign(c.Request.Context(), req.CampaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

// GetByID handles POST /invoice/get-invoice-by-id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	var req struct {
		InvoiceID string `json:"invoiceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), req.InvoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}
