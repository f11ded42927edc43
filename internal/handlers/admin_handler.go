package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/services"
)

// AdminHandler handles administrative account HTTP requests
type AdminHandler struct {
	adminService services.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	adminID, token, err := h.adminService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"adminId": adminID,
		"token":   token,
	})
}

// UpdatePassword handles POST /admin/updatePassword
func (h *AdminHandler) UpdatePassword(c *gin.Context) {
	var req models.AdminUpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.adminService.UpdatePassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}

// ForgotPassword handles POST /admin/forgotPassword
func (h *AdminHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.adminService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

// ResetPassword handles POST /admin/resetPassword
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.adminService.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password reset"})
}

// RequestEmailUpdate handles POST /admin/requestEmailUpdate
func (h *AdminHandler) RequestEmailUpdate(c *gin.Context) {
	var req models.RequestEmailUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.adminService.RequestEmailUpdate(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "confirmation code sent"})
}

// VerifyEmailUpdate handles POST /admin/verifyEmailUpdate
func (h *AdminHandler) VerifyEmailUpdate(c *gin.Context) {
	var req models.VerifyEmailUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	email, token, err := h.adminService.VerifyEmailUpdate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "email updated",
		"email":   email,
		"token":   token,
	})
}
