package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"github.com/sharemitra/sharemitra-backend/internal/utils"
	"github.com/sharemitra/sharemitra-backend/pkg/mailer"
	"github.com/sharemitra/sharemitra-backend/pkg/razorpay"
)

// Compile-time check to ensure paymentService implements PaymentService
var _ PaymentService = (*paymentService)(nil)

type paymentService struct {
	paymentRepo  repositories.PaymentRepository
	campaignRepo repositories.CampaignRepository
	clientRepo   repositories.ClientRepository
	catalog      CatalogService
	gateway      razorpay.Gateway
	mail         mailer.Mailer
	keySecret    string
}

// NewPaymentService creates a new PaymentService. keySecret is the
// gateway secret used to verify callback signatures.
func NewPaymentService(paymentRepo repositories.PaymentRepository, campaignRepo repositories.CampaignRepository, clientRepo repositories.ClientRepository, catalog CatalogService, gateway razorpay.Gateway, mail mailer.Mailer, keySecret string) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		campaignRepo: campaignRepo,
		clientRepo:   clientRepo,
		catalog:      catalog,
		gateway:      gateway,
		mail:         mail,
		keySecret:    keySecret,
	}
}

// CreateOrder converts the major-unit amount to the smallest currency
// unit, creates the gateway order and records a local payment row in
// "created" state, snapshotting the client name and service heading.
func (s *paymentService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*razorpay.Order, *models.Payment, error) {
	client, err := s.clientRepo.FindByClientID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, fmt.Errorf("failed to load client: %w", err)
	}

	// The heading is snapshotted now; the campaign this order pays for
	// is resolved at verify time by the same clientId+serviceId pair.
	service, err := s.catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}
	receipt := strings.TrimSpace(req.Receipt)
	if receipt == "" {
		receipt, err = utils.GenerateReceipt(10)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate receipt: %w", err)
		}
	}

	// Smallest currency unit, rounded half away from zero.
	amount := int64(math.Round(req.Amount * 100))

	order, err := s.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, nil, fmt.Errorf("gateway order creation failed: %w", err)
	}

	payment := &models.Payment{
		OrderID:        order.ID,
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		ClientID:       client.ClientID,
		ClientName:     client.Name,
		ServiceID:      service.ServiceID,
		ServiceHeading: service.ServiceHeading,
		Status:         models.PaymentStatusCreated,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	log.WithFields(log.Fields{
		"orderId":  order.ID,
		"clientId": client.ClientID,
		"amount":   amount,
		"currency": currency,
	}).Info("payment order created")

	return order, payment, nil
}

// VerifyPayment validates the gateway callback. The signature check is
// an HMAC over "orderId|paymentId" with the key secret; a mismatch marks
// the payment failed and nothing else changes. On success the payment is
// approved at most once and the client's latest pending campaign for the
// same service is completed.
func (s *paymentService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.Payment, *models.Campaign, error) {
	payment, err := s.paymentRepo.FindByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrPaymentNotFound
		}
		return nil, nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if !razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.keySecret) {
		if err := s.paymentRepo.UpdateStatusFromCreated(ctx, payment.OrderID, models.PaymentStatusFailed); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			log.WithError(err).WithField("orderId", payment.OrderID).Error("failed to mark payment failed")
		}
		return nil, nil, ErrInvalidSignature
	}

	// Re-delivered callback for an already-approved payment: succeed
	// without repeating any side effect.
	if payment.Status == models.PaymentStatusApproved {
		return payment, nil, nil
	}
	if payment.Status != models.PaymentStatusCreated {
		return nil, nil, fmt.Errorf("%w: payment is %s", ErrPaymentNotApproved, payment.Status)
	}

	info, err := s.gateway.FetchPayment(ctx, req.RazorpayPaymentID)
	if err != nil {
		return nil, nil, fmt.Errorf("gateway payment lookup failed: %w", err)
	}
	if info.Status != razorpay.StatusCaptured {
		if err := s.paymentRepo.UpdateStatusFromCreated(ctx, payment.OrderID, models.PaymentStatus(info.Status)); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			log.WithError(err).WithField("orderId", payment.OrderID).Error("failed to record gateway status")
		}
		return nil, nil, fmt.Errorf("%w: gateway reports %s", ErrPaymentNotCaptured, info.Status)
	}

	approved, err := s.paymentRepo.Approve(ctx, payment.OrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost the race with a concurrent callback; the payment is
			// already settled.
			settled, ferr := s.paymentRepo.FindByOrderID(ctx, payment.OrderID)
			if ferr == nil && settled.Status == models.PaymentStatusApproved {
				return settled, nil, nil
			}
			return nil, nil, ErrPaymentNotApproved
		}
		return nil, nil, fmt.Errorf("failed to approve payment: %w", err)
	}

	campaign, err := s.campaignRepo.CompleteLatestPending(ctx, approved.ClientID, approved.ServiceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.WithFields(log.Fields{
				"orderId":   approved.OrderID,
				"clientId":  approved.ClientID,
				"serviceId": approved.ServiceID,
			}).Warn("payment approved but no pending campaign to complete")
		} else {
			log.WithError(err).WithField("orderId", approved.OrderID).Error("failed to complete campaign after payment")
		}
		return approved, nil, nil
	}

	s.sendReceipt(ctx, approved, campaign)

	log.WithFields(log.Fields{
		"orderId":    approved.OrderID,
		"paymentId":  approved.PaymentID,
		"campaignId": campaign.CampaignID,
	}).Info("payment approved and campaign completed")

	return approved, campaign, nil
}

// sendReceipt emails the client a payment confirmation. Best-effort.
func (s *paymentService) sendReceipt(ctx context.Context, payment *models.Payment, campaign *models.Campaign) {
	client, err := s.clientRepo.FindByClientID(ctx, payment.ClientID)
	if err != nil {
		log.WithError(err).WithField("clientId", payment.ClientID).Warn("payment approved but client lookup failed")
		return
	}

	body := fmt.Sprintf(`Hello %s,

We have received your payment of %.2f %s for your %q campaign.

Order ID:   %s
Payment ID: %s
Paid on:    %s

You can generate an invoice from your dashboard at any time. For any questions, contact care@sharemitra.com.

Best regards,
The ShareMitra Team`,
		client.Name.FirstName,
		float64(payment.Amount)/100, payment.Currency, campaign.ServiceHeading,
		payment.OrderID, payment.PaymentID,
		time.Now().Format("02 Jan 2006 15:04 MST"))

	if err := s.mail.Send(client.Email, "ShareMitra Payment Received", body); err != nil {
		log.WithError(err).WithField("orderId", payment.OrderID).Warn("failed to send payment receipt email")
	}
}
