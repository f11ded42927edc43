package repositories

import (
	"context"

	"github.com/sharemitra/sharemitra-backend/internal/models"
)

// ServiceRepository defines the interface for catalog data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByServiceID(ctx context.Context, serviceID string) (*models.Service, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]*models.Service, int64, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, serviceID string) error
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByCampaignID(ctx context.Context, campaignID string) (*models.Campaign, error)
	FindAll(ctx context.Context) ([]*models.Campaign, error)
	FindByClientAndStatus(ctx context.Context, clientID string, status models.CampaignStatus, page, limit int, search string) ([]*models.Campaign, int64, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error)
	// CompleteLatestPending flips the most recently created pending campaign
	// matching clientID+serviceID to Completed and returns it.
	CompleteLatestPending(ctx context.Context, clientID, serviceID string) (*models.Campaign, error)
	Delete(ctx context.Context, campaignID string) (*models.Campaign, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	// UpdateStatusFromCreated transitions a payment out of "created" into the
	// given status. Payments already in a terminal state are left untouched.
	UpdateStatusFromCreated(ctx context.Context, orderID string, status models.PaymentStatus) error
	// Approve conditionally transitions created -> approved, recording the
	// gateway payment id, signature and approval timestamp.
	Approve(ctx context.Context, orderID, paymentID, signature string) (*models.Payment, error)
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	FindByClientID(ctx context.Context, clientID string) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	FindAll(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByAdminID(ctx context.Context, adminID string) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByInvoiceID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	FindByCampaignID(ctx context.Context, campaignID string) ([]*models.Invoice, error)
	// NextSequence atomically increments and returns the named counter,
	// used for human-readable invoice numbers.
	NextSequence(ctx context.Context, name string) (int64, error)
}

// DocumentRepository defines the interface for policy document operations
type DocumentRepository interface {
	Upsert(ctx context.Context, document *models.Document) error
	FindByType(ctx context.Context, docType models.DocumentType) (*models.Document, error)
	FindAll(ctx context.Context) ([]*models.Document, error)
}
