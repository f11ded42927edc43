package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignaturePayload returns the string the gateway signs during the
// payment callback handshake: "<orderID>|<paymentID>".
func SignaturePayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

// Signature computes the hex-encoded HMAC-SHA256 of the callback payload
// keyed by the account secret.
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(SignaturePayload(orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature recomputes the callback signature and compares it against
// the supplied one in constant time. Any difference, including case or
// whitespace, fails verification.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
