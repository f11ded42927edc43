package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailChangeRequest is a pending admin email change, confirmed by an
// OTP sent to the current address.
type EmailChangeRequest struct {
	OTP      string    `bson:"otp" json:"-"`
	NewEmail string    `bson:"newEmail" json:"-"`
	Expiry   time.Time `bson:"expiry" json:"-"`
}

// Admin represents an administrative account
type Admin struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	AdminID        string              `bson:"adminId" json:"adminId"`
	Email          string              `bson:"email" json:"email"`
	PasswordHash   string              `bson:"passwordHash" json:"-"`
	ResetOTP       string              `bson:"resetOtp,omitempty" json:"-"`
	ResetOTPExpiry time.Time           `bson:"resetOtpExpiry,omitempty" json:"-"`
	EmailChange    *EmailChangeRequest `bson:"emailChange,omitempty" json:"-"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
