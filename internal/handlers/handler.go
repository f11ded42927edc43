package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/services"
)

// respondError maps service sentinel errors onto HTTP status codes.
// Anything unrecognized is a 500 with a generic message so internal
// details never leak to callers.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrCampaignNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrInvoiceNotFound),
		errors.Is(err, services.ErrContentNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidSignature),
		errors.Is(err, services.ErrPaymentNotCaptured),
		errors.Is(err, services.ErrPaymentNotApproved),
		errors.Is(err, services.ErrEmailInUse),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrNoPendingRequest):
		// A forged callback signature is a 400, matching the gateway's
		// own callback contract.
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}

// respondBadRequest is used for body binding failures
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
}
