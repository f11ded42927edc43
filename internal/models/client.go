package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client represents a registered client account. The password hash and
// OTP fields are never serialized in responses.
type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ClientID       string             `bson:"clientId" json:"clientId"`
	Name           ClientName         `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"passwordHash,omitempty" json:"-"`
	Verified       bool               `bson:"verified" json:"verified"`
	OTP            string             `bson:"otp,omitempty" json:"-"`
	OTPExpiry      time.Time          `bson:"otpExpiry,omitempty" json:"-"`
	ResetOTP       string             `bson:"resetOtp,omitempty" json:"-"`
	ResetOTPExpiry time.Time          `bson:"resetOtpExpiry,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
