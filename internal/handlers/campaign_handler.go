package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
	"github.com/sharemitra/sharemitra-backend/internal/utils"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// Create handles POST /campaign/create
func (h *CampaignHandler) Create(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	campaignID, err := h.campaignService.CreateCampaign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "campaign created",
		"campaignId": campaignID,
	})
}

// Update handles POST /campaign/update
func (h *CampaignHandler) Update(c *gin.Context) {
	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "campaign updated", "campaign": campaign})
}

// GetAll handles GET /campaign/getAll
func (h *CampaignHandler) GetAll(c *gin.Context) {
	campaigns, err := h.campaignService.GetAllCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(campaigns), "campaigns": campaigns})
}

// Active handles POST /campaign/active: a client's pending campaigns
func (h *CampaignHandler) Active(c *gin.Context) {
	h.byClient(c, models.CampaignStatusPending)
}

// Previous handles POST /campaign/previous: a client's completed campaigns
func (h *CampaignHandler) Previous(c *gin.Context) {
	h.byClient(c, models.CampaignStatusCompleted)
}

func (h *CampaignHandler) byClient(c *gin.Context, status models.CampaignStatus) {
	var req models.CampaignsByClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")
	page, limit = utils.NormalizePage(page, limit)

	campaigns, total, err := h.campaignService.GetCampaignsByClient(c.Request.Context(), req.ClientID, status, page, limit, search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(campaigns),
		"campaigns":  campaigns,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": utils.TotalPages(total, limit),
	})
}

// UpdateStatus handles POST /admin/updateStatus
func (h *CampaignHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	campaign, err := h.campaignService.UpdateStatus(c.Request.Context(), req.CampaignID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "status updated", "campaign": campaign})
}

// Delete handles POST /campaign/delete
func (h *CampaignHandler) Delete(c *gin.Context) {
	var req struct {
		CampaignID string `json:"campaignId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	campaign, err := h.campaignService.DeleteCampaign(c.Request.Context(), req.CampaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "campaign deleted", "campaign": campaign})
}
