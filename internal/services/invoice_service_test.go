package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/pkg/razorpay"
)

type invoiceFixture struct {
	*paymentFixture
	invoices InvoiceService
	repo     *fakeInvoiceRepo
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	pf := newPaymentFixture(t)
	repo := newFakeInvoiceRepo()
	return &invoiceFixture{
		paymentFixture: pf,
		invoices:       NewInvoiceService(repo, pf.campaignFixture.repo, pf.clients, pf.repo, testKeySecret),
		repo:           repo,
	}
}

// paidCampaign walks a campaign through order creation and verification
func (f *invoiceFixture) paidCampaign(t *testing.T) (*models.Campaign, *models.Payment, string) {
	t.Helper()

	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 3})
	order, _ := f.createOrder(t, campaign.TotalAmount)
	payment, _, err := f.verify(order.ID, "pay_001")
	require.NoError(t, err)
	return campaign, payment, order.ID
}

func (f *invoiceFixture) generateReq(campaign *models.Campaign, payment *models.Payment) *models.GenerateInvoiceRequest {
	return &models.GenerateInvoiceRequest{
		CampaignID:        campaign.CampaignID,
		RazorpayOrderID:   payment.OrderID,
		RazorpayPaymentID: payment.PaymentID,
		RazorpaySignature: payment.Signature,
	}
}

func TestGenerateInvoiceSnapshotsCampaign(t *testing.T) {
	f := newInvoiceFixture(t)
	campaign, payment, _ := f.paidCampaign(t)

	invoice, err := f.invoices.Generate(context.Background(), f.generateReq(campaign, payment))
	require.NoError(t, err)

	assert.Equal(t, "INV00001", invoice.InvoiceNumber)
	assert.Equal(t, campaign.CampaignID, invoice.CampaignID)
	assert.Equal(t, "Asha Patel", invoice.BillTo.FullName)
	assert.Equal(t, "asha@example.com", invoice.BillTo.Email)
	assert.Equal(t, campaign.TotalAmount, invoice.Subtotal)
	assert.Equal(t, campaign.TotalAmount, invoice.Total)
	assert.Len(t, invoice.Items, len(campaign.Actions))
	assert.Equal(t, payment.OrderID, invoice.PaymentInfo.OrderID)
	assert.Equal(t, payment.Amount, invoice.PaymentInfo.Amount)
}

func TestInvoiceNumbersAreSequential(t *testing.T) {
	f := newInvoiceFixture(t)
	campaign, payment, _ := f.paidCampaign(t)

	for i := 1; i <= 3; i++ {
		invoice, err := f.invoices.Generate(context.Background(), f.generateReq(campaign, payment))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV%05d", i), invoice.InvoiceNumber)
	}

	list, err := f.invoices.GetByCampaign(context.Background(), campaign.CampaignID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestGenerateInvoiceRejectsBadSignature(t *testing.T) {
	f := newInvoiceFixture(t)
	campaign, payment, _ := f.paidCampaign(t)

	req := f.generateReq(campaign, payment)
	req.RazorpaySignature = "forged"
	_, err := f.invoices.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestGenerateInvoiceRequiresApprovedPayment(t *testing.T) {
	f := newInvoiceFixture(t)

	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1})
	order, _ := f.createOrder(t, campaign.TotalAmount)

	// Payment still "created": a valid signature is not enough.
	req := &models.GenerateInvoiceRequest{
		CampaignID:        campaign.CampaignID,
		RazorpayOrderID:   order.ID,
		RazorpayPaymentID: "pay_001",
		RazorpaySignature: razorpay.Signature(order.ID, "pay_001", testKeySecret),
	}
	_, err := f.invoices.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrPaymentNotApproved)
}

func TestGenerateInvoiceUnknownCampaignOrOrder(t *testing.T) {
	f := newInvoiceFixture(t)
	campaign, payment, _ := f.paidCampaign(t)

	req := f.generateReq(campaign, payment)
	req.CampaignID = "ghost"
	_, err := f.invoices.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	req = f.generateReq(campaign, payment)
	req.RazorpayOrderID = "order_GHOST"
	_, err = f.invoices.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestGetInvoiceByID(t *testing.T) {
	f := newInvoiceFixture(t)
	campaign, payment, _ := f.paidCampaign(t)

	created, err := f.invoices.Generate(context.Background(), f.generateReq(campaign, payment))
	require.NoError(t, err)

	fetched, err := f.invoices.GetByID(context.Background(), created.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, fetched.InvoiceNumber)

	_, err = f.invoices.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
