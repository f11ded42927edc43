package services

import (
	"context"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/pkg/razorpay"
)

// ResolvedPrice is the catalog's answer for one content item
type ResolvedPrice struct {
	Key       string
	UnitPrice float64
}

// CatalogService owns the mapping from a service's content items to unit
// prices. It is the single source of truth consulted whenever a
// campaign's action list is priced.
type CatalogService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error)
	GetAllServices(ctx context.Context, page, limit int, search string) ([]*models.Service, int64, error)
	GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
	DeleteServiceContent(ctx context.Context, serviceID, contentID string) (*models.Service, error)
	// ResolvePrice returns the current display key and unit price for a
	// content item, looked up by its stable identifier.
	ResolvePrice(ctx context.Context, serviceID, contentID string) (*ResolvedPrice, error)
	// PriceActions resolves every action against the service's catalog,
	// filling in the key/price/total snapshots, and returns the grand
	// total. Any invalid reference fails the whole operation.
	PriceActions(ctx context.Context, serviceID string, actions []models.Action) (float64, error)
}

// CampaignService owns the campaign lifecycle and the total-computation
// invariant.
type CampaignService interface {
	CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (string, error)
	UpdateCampaign(ctx context.Context, req *models.UpdateCampaignRequest) (*models.Campaign, error)
	GetAllCampaigns(ctx context.Context) ([]*models.Campaign, error)
	GetCampaignsByClient(ctx context.Context, clientID string, status models.CampaignStatus, page, limit int, search string) ([]*models.Campaign, int64, error)
	UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID string) (*models.Campaign, error)
}

// PaymentService bridges campaign totals to the payment gateway and
// safely applies the result.
type PaymentService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*razorpay.Order, *models.Payment, error)
	VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.Payment, *models.Campaign, error)
}

// ClientService handles client registration, login and account flows
type ClientService interface {
	GenerateOTP(ctx context.Context, req *models.GenerateOTPRequest) error
	Register(ctx context.Context, req *models.RegisterRequest) (clientID, token string, err error)
	Login(ctx context.Context, req *models.LoginRequest) (clientID, token string, err error)
	GetClientByID(ctx context.Context, clientID string) (*models.Client, error)
	GetAllClients(ctx context.Context) ([]*models.Client, error)
	UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error
	GenerateResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// AdminService handles administrative account flows
type AdminService interface {
	Login(ctx context.Context, req *models.LoginRequest) (adminID, token string, err error)
	UpdatePassword(ctx context.Context, req *models.AdminUpdatePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	RequestEmailUpdate(ctx context.Context, req *models.RequestEmailUpdateRequest) error
	VerifyEmailUpdate(ctx context.Context, req *models.VerifyEmailUpdateRequest) (email, token string, err error)
}

// InvoiceService generates and serves invoice snapshots
type InvoiceService interface {
	Generate(ctx context.Context, req *models.GenerateInvoiceRequest) (*models.Invoice, error)
	GetByCampaign(ctx context.Context, campaignID string) ([]*models.Invoice, error)
	GetByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
}

// DocumentService manages site policy documents
type DocumentService interface {
	Upsert(ctx context.Context, req *models.UpsertDocumentRequest) (*models.Document, error)
	GetByType(ctx context.Context, docType models.DocumentType) (*models.Document, error)
	GetAll(ctx context.Context) ([]*models.Document, error)
}
