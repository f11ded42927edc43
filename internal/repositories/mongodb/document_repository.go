package mongodb

import (
	"context"
	"time"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure DocumentRepository implements the interface
var _ repositories.DocumentRepository = (*DocumentRepository)(nil)

// DocumentRepository handles MongoDB operations for policy documents
type DocumentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{
		collection: db.Collection("documents"),
	}
}

// Upsert creates or replaces the single document of the given type
func (r *DocumentRepository) Upsert(ctx context.Context, document *models.Document) error {
	now := time.Now()
	filter := bson.M{"type": document.Type}
	update := bson.M{
		"$set": bson.M{
			"title":     document.Title,
			"content":   document.Content,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindByType finds the document of the given type
func (r *DocumentRepository) FindByType(ctx context.Context, docType models.DocumentType) (*models.Document, error) {
	var document models.Document
	filter := bson.M{"type": docType}
	err := r.collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &document, nil
}

// FindAll retrieves all policy documents
func (r *DocumentRepository) FindAll(ctx context.Context) ([]*models.Document, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var documents []*models.Document
	if err = cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	if documents == nil {
		documents = []*models.Document{}
	}
	return documents, nil
}
