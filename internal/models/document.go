package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentType identifies a policy document. One document per type.
type DocumentType string

const (
	DocumentTypePrivacy  DocumentType = "privacy"
	DocumentTypeTerms    DocumentType = "terms"
	DocumentTypeCookie   DocumentType = "cookie"
	DocumentTypeShipping DocumentType = "shipping"
	DocumentTypeReturn   DocumentType = "return"
	DocumentTypeFAQ      DocumentType = "faq"
)

// Valid reports whether the type is one of the known policy documents
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypePrivacy, DocumentTypeTerms, DocumentTypeCookie,
		DocumentTypeShipping, DocumentTypeReturn, DocumentTypeFAQ:
		return true
	}
	return false
}

// Document is a site policy document (privacy, terms, cookie, shipping,
// return, faq)
type Document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Type      DocumentType       `bson:"type" json:"type"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
