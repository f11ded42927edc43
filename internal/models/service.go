package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceContent is an individually priced item inside a service.
// Value carries the unit price as a string-formatted number.
type ServiceContent struct {
	ContentID string `bson:"contentId" json:"contentId"`
	Key       string `bson:"key" json:"key"`
	Value     string `bson:"value" json:"value"`
}

// Service represents a catalog entry with its priced content items
type Service struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ServiceID          string             `bson:"serviceId" json:"serviceId"`
	ServiceHeading     string             `bson:"serviceHeading" json:"serviceHeading"`
	ServiceDescription string             `bson:"serviceDescription" json:"serviceDescription"`
	ServiceContent     []ServiceContent   `bson:"serviceContent" json:"serviceContent"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContentByID looks up a content item by its stable identifier.
// List position is not an identity.
func (s *Service) ContentByID(contentID string) *ServiceContent {
	for i := range s.ServiceContent {
		if s.ServiceContent[i].ContentID == contentID {
			return &s.ServiceContent[i]
		}
	}
	return nil
}
