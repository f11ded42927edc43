package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillTo holds the client billing details snapshot on an invoice
type BillTo struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
}

// InvoicePaymentInfo is the gateway order/payment snapshot on an invoice
type InvoicePaymentInfo struct {
	OrderID   string `bson:"orderId" json:"orderId"`
	PaymentID string `bson:"paymentId" json:"paymentId"`
	Amount    int64  `bson:"amount" json:"amount"`
	Currency  string `bson:"currency" json:"currency"`
}

// Invoice is a point-in-time snapshot of a completed campaign's billing
// data. Immutable once created. Dates are YYYY-MM-DD strings.
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	InvoiceID     string             `bson:"invoiceId" json:"invoiceId"`
	InvoiceNumber string             `bson:"invoiceNumber" json:"invoiceNumber"`
	CampaignID    string             `bson:"campaignId" json:"campaignId"`
	InvoiceDate   string             `bson:"invoiceDate" json:"invoiceDate"`
	DueDate       string             `bson:"dueDate" json:"dueDate"`
	BillTo        BillTo             `bson:"billTo" json:"billTo"`
	Items         []Action           `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Total         float64            `bson:"total" json:"total"`
	Note          string             `bson:"note,omitempty" json:"note,omitempty"`
	PaymentInfo   InvoicePaymentInfo `bson:"paymentInfo" json:"paymentInfo"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
