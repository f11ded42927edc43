package services

import "errors"

// Business-rule failures. Handlers map these onto HTTP status codes;
// anything not in this list surfaces as a generic 500.
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrAdminNotFound    = errors.New("admin not found")

	// ErrInvalidAction marks an integrity failure inside an otherwise
	// valid service: the whole campaign operation fails, attributable
	// to the offending action.
	ErrInvalidAction = errors.New("invalid action")

	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrPaymentNotCaptured = errors.New("payment not captured")
	ErrPaymentNotApproved = errors.New("payment not approved")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNoPendingRequest   = errors.New("no pending request")
)
