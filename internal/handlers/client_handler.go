package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
)

// ClientHandler handles client account HTTP requests
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// GenerateOTP handles POST /client/generateOtp
func (h *ClientHandler) GenerateOTP(c *gin.Context) {
	var req models.GenerateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.clientService.GenerateOTP(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

// Register handles POST /client/register
func (h *ClientHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	clientID, token, err := h.clientService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "registration complete",
		"clientId": clientID,
		"token":    token,
	})
}

// Login handles POST /client/login
func (h *ClientHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	clientID, token, err := h.clientService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "login successful",
		"clientId": clientID,
		"token":    token,
	})
}

// GetByID handles POST /client/getById
func (h *ClientHandler) GetByID(c *gin.Context) {
	var req struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// GetAll handles GET /client/getAll
func (h *ClientHandler) GetAll(c *gin.Context) {
	clients, err := h.clientService.GetAllClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "clients": clients})
}

// UpdatePassword handles POST /client/update
func (h *ClientHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.clientService.UpdatePassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}

// GenerateResetOTP handles POST /client/generateResetOtp
func (h *ClientHandler) GenerateResetOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.clientService.GenerateResetOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

// ResetPassword handles POST /client/verifyResetOtp
func (h *ClientHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.clientService.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password reset"})
}
