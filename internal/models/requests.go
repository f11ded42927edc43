package models

// ActionRequest is one requested action line on campaign creation
type ActionRequest struct {
	ContentID string `json:"contentId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateCampaignRequest defines the structure for campaign creation
type CreateCampaignRequest struct {
	ClientID  string          `json:"clientId" binding:"required"`
	ServiceID string          `json:"serviceId" binding:"required"`
	Link      string          `json:"link" binding:"required"`
	Actions   []ActionRequest `json:"actions" binding:"required,min=1,dive"`
}

// UpdateActionRequest updates an existing action (by actionId) or adds a
// new one (actionId omitted)
type UpdateActionRequest struct {
	ActionID  string `json:"actionId"`
	ContentID string `json:"contentId"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCampaignRequest defines the structure for campaign updates
type UpdateCampaignRequest struct {
	CampaignID string                `json:"campaignId" binding:"required"`
	Link       string                `json:"link"`
	Actions    []UpdateActionRequest `json:"actions" binding:"omitempty,dive"`
}

// CampaignsByClientRequest selects a client's campaigns
type CampaignsByClientRequest struct {
	ClientID string `json:"clientId" binding:"required"`
}

// UpdateCampaignStatusRequest is the administrative status transition
type UpdateCampaignStatusRequest struct {
	CampaignID string         `json:"campaignId" binding:"required"`
	Status     CampaignStatus `json:"status"`
}

// CreateOrderRequest defines the structure for payment order creation.
// Amount is in major units (e.g. dollars).
type CreateOrderRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	Receipt   string  `json:"receipt"`
	ClientID  string  `json:"clientId" binding:"required"`
	ServiceID string  `json:"serviceId" binding:"required"`
}

// VerifyPaymentRequest carries the gateway callback fields
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// CreateServiceRequest defines the structure for catalog entries
type CreateServiceRequest struct {
	ServiceHeading     string                  `json:"serviceHeading" binding:"required"`
	ServiceDescription string                  `json:"serviceDescription" binding:"required"`
	ServiceContent     []ServiceContentRequest `json:"serviceContent" binding:"required,dive"`
}

// ServiceContentRequest is one content item; ContentID is set when
// updating an existing item, omitted for new ones
type ServiceContentRequest struct {
	ContentID string `json:"contentId"`
	Key       string `json:"key" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

// UpdateServiceRequest defines the structure for catalog updates
type UpdateServiceRequest struct {
	ServiceID          string                  `json:"serviceId" binding:"required"`
	ServiceHeading     string                  `json:"serviceHeading"`
	ServiceDescription string                  `json:"serviceDescription"`
	ServiceContent     []ServiceContentRequest `json:"serviceContent" binding:"omitempty,dive"`
}

// GenerateOTPRequest starts client registration
type GenerateOTPRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// RegisterRequest completes client registration with the emailed OTP
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest changes a password after verifying the old one
type UpdatePasswordRequest struct {
	ClientID    string `json:"clientId" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPasswordRequest completes an OTP password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// GenerateInvoiceRequest creates an invoice for a paid campaign
type GenerateInvoiceRequest struct {
	CampaignID        string `json:"campaignId" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// UpsertDocumentRequest creates or replaces a policy document
type UpsertDocumentRequest struct {
	Type    DocumentType `json:"type" binding:"required"`
	Title   string       `json:"title" binding:"required"`
	Content string       `json:"content" binding:"required"`
}

// AdminUpdatePasswordRequest changes an admin password
type AdminUpdatePasswordRequest struct {
	AdminID     string `json:"adminId" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// RequestEmailUpdateRequest starts an admin email change
type RequestEmailUpdateRequest struct {
	AdminID  string `json:"adminId" binding:"required"`
	NewEmail string `json:"newEmail" binding:"required,email"`
}

// VerifyEmailUpdateRequest confirms an admin email change with the OTP
type VerifyEmailUpdateRequest struct {
	AdminID string `json:"adminId" binding:"required"`
	OTP     string `json:"otp" binding:"required"`
}
