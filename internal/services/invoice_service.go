package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"github.com/sharemitra/sharemitra-backend/pkg/razorpay"
)

// invoiceSequence is the counter name backing invoice numbers
const invoiceSequence = "invoiceNumber"

// Compile-time check to ensure invoiceService implements InvoiceService
var _ InvoiceService = (*invoiceService)(nil)

type invoiceService struct {
	invoiceRepo  repositories.InvoiceRepository
	campaignRepo repositories.CampaignRepository
	clientRepo   repositories.ClientRepository
	paymentRepo  repositories.PaymentRepository
	keySecret    string
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, campaignRepo repositories.CampaignRepository, clientRepo repositories.ClientRepository, paymentRepo repositories.PaymentRepository, keySecret string) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		campaignRepo: campaignRepo,
		clientRepo:   clientRepo,
		paymentRepo:  paymentRepo,
		keySecret:    keySecret,
	}
}

// Generate snapshots a paid campaign into an immutable invoice. The
// caller must present the same gateway triplet that approved the
// payment; the payment must already be approved.
func (s *invoiceService) Generate(ctx context.Context, req *models.GenerateInvoiceRequest) (*models.Invoice, error) {
	campaign, err := s.campaignRepo.FindByCampaignID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	if !razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.keySecret) {
		return nil, ErrInvalidSignature
	}
	if payment.Status != models.PaymentStatusApproved {
		return nil, ErrPaymentNotApproved
	}

	client, err := s.clientRepo.FindByClientID(ctx, campaign.ClientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	seq, err := s.invoiceRepo.NextSequence(ctx, invoiceSequence)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now()
	invoice := &models.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: fmt.Sprintf("INV%05d", seq),
		CampaignID:    campaign.CampaignID,
		InvoiceDate:   now.Format("2006-01-02"),
		DueDate:       now.Format("2006-01-02"),
		BillTo: models.BillTo{
			FullName: fmt.Sprintf("%s %s", client.Name.FirstName, client.Name.LastName),
			Email:    client.Email,
		},
		Items:    campaign.Actions,
		Subtotal: campaign.TotalAmount,
		Total:    campaign.TotalAmount,
		Note:     "Thank you for your business!",
		PaymentInfo: models.InvoicePaymentInfo{
			OrderID:   payment.OrderID,
			PaymentID: payment.PaymentID,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
		},
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

// GetByCampaign retrieves all invoices generated for a campaign
func (s *invoiceService) GetByCampaign(ctx context.Context, campaignID string) ([]*models.Invoice, error) {
	return s.invoiceRepo.FindByCampaignID(ctx, campaignID)
}

// GetByID retrieves an invoice by its identifier
func (s *invoiceService) GetByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}
