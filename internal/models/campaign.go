package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignStatus is the numeric campaign status enum
type CampaignStatus int

const (
	// CampaignStatusPending marks a newly created campaign awaiting completion
	CampaignStatusPending CampaignStatus = 0
	// CampaignStatusCompleted marks a fully processed/paid campaign
	CampaignStatusCompleted CampaignStatus = 1
)

// Valid reports whether the status is one of the two legal values
func (s CampaignStatus) Valid() bool {
	return s == CampaignStatusPending || s == CampaignStatusCompleted
}

// ClientName is the denormalized client name snapshot embedded in
// campaigns and payments. Captured at creation, never refreshed.
type ClientName struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Action is one priced line item within a campaign. ContentKey and
// UnitPrice are snapshots resolved from the catalog at pricing time;
// TotalCost = Quantity * UnitPrice.
type Action struct {
	ActionID   string  `bson:"actionId" json:"actionId"`
	ContentID  string  `bson:"contentId" json:"contentId"`
	ContentKey string  `bson:"contentKey" json:"contentKey"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	UnitPrice  float64 `bson:"unitPrice" json:"unitPrice"`
	TotalCost  float64 `bson:"totalCost" json:"totalCost"`
}

// Campaign is a client's paid request for a bundle of priced actions
// against a service. TotalAmount always equals the sum of action totals.
type Campaign struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CampaignID     string             `bson:"campaignId" json:"campaignId"`
	ClientID       string             `bson:"clientId" json:"clientId"`
	ClientName     ClientName         `bson:"clientName" json:"clientName"`
	ServiceID      string             `bson:"serviceId" json:"serviceId"`
	ServiceHeading string             `bson:"serviceHeading" json:"serviceHeading"`
	Link           string             `bson:"link" json:"link"`
	Actions        []Action           `bson:"actions" json:"actions"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	Status         CampaignStatus     `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ActionByID looks up an action by its identifier
func (c *Campaign) ActionByID(actionID string) *Action {
	for i := range c.Actions {
		if c.Actions[i].ActionID == actionID {
			return &c.Actions[i]
		}
	}
	return nil
}
