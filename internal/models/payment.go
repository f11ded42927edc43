package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is the payment state. "created" is the only non-terminal
// state; gateway statuses other than captured are persisted verbatim.
type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment is one row per gateway order. PaymentID and Signature are
// populated only after a verified callback. Amount is in the smallest
// currency unit.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID        string             `bson:"orderId" json:"orderId"`
	PaymentID      string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Signature      string             `bson:"signature,omitempty" json:"signature,omitempty"`
	Amount         int64              `bson:"amount" json:"amount"`
	Currency       string             `bson:"currency" json:"currency"`
	Receipt        string             `bson:"receipt" json:"receipt"`
	ClientID       string             `bson:"clientId" json:"clientId"`
	ClientName     ClientName         `bson:"clientName" json:"clientName"`
	ServiceID      string             `bson:"serviceId" json:"serviceId"`
	ServiceHeading string             `bson:"serviceHeading" json:"serviceHeading"`
	Status         PaymentStatus      `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	ApprovedAt     *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}
