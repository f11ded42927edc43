package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
	"github.com/sharemitra/sharemitra-backend/internal/utils"
)

// ServiceHandler handles catalog HTTP requests
type ServiceHandler struct {
	catalogService services.CatalogService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// Create handles POST /service/create
func (h *ServiceHandler) Create(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "service created", "service": service})
}

// GetAll handles GET /service/getAll with page/limit/search query params
func (h *ServiceHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")
	page, limit = utils.NormalizePage(page, limit)

	items, total, err := h.catalogService.GetAllServices(c.Request.Context(), page, limit, search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"services":   items,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": utils.TotalPages(total, limit),
	})
}

// GetByID handles POST /service/getById
func (h *ServiceHandler) GetByID(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	service, err := h.catalogService.GetServiceByID(c.Request.Context(), req.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// Update handles POST /service/update
func (h *ServiceHandler) Update(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "service updated", "service": service})
}

// Delete handles POST /service/delete
func (h *ServiceHandler) Delete(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), req.ServiceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "service deleted"})
}

// DeleteContent handles POST /service/deleteContent
func (h *ServiceHandler) DeleteContent(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
		ContentID string `json:"contentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	service, err := h.catalogService.DeleteServiceContent(c.Request.Context(), req.ServiceID, req.ContentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "content deleted", "service": service})
}
