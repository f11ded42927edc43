package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
)

// DocumentHandler handles policy document HTTP requests
type DocumentHandler struct {
	documentService services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upsert handles POST /docs/upsert
func (h *DocumentHandler) Upsert(c *gin.Context) {
	var req models.UpsertDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	document, err := h.documentService.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "document saved", "document": document})
}

// GetByType handles POST /docs/getByType
func (h *DocumentHandler) GetByType(c *gin.Context) {
	var req struct {
		Type models.DocumentType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	document, err := h.documentService.GetByType(c.Request.Context(), req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "document": document})
}

// GetAll handles GET /docs/getAll
func (h *DocumentHandler) GetAll(c *gin.Context) {
	documents, err := h.documentService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documents": documents})
}
