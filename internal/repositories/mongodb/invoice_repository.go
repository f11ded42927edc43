package mongodb

import (
	"context"
	"time"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure InvoiceRepository implements the interface
var _ repositories.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository handles MongoDB operations for Invoice and the
// sequence counters backing invoice numbers
type InvoiceRepository struct {
	collection *mongo.Collection
	sequences  *mongo.Collection
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{
		collection: db.Collection("invoices"),
		sequences:  db.Collection("sequences"),
	}
}

// Create inserts a new invoice. Invoices are immutable once created.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = primitive.NewObjectID()
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, invoice)
	return err
}

// FindByInvoiceID finds an invoice by its stable identifier
func (r *InvoiceRepository) FindByInvoiceID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	filter := bson.M{"invoiceId": invoiceID}
	err := r.collection.FindOne(ctx, filter).Decode(&invoice)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &invoice, nil
}

// FindByCampaignID retrieves all invoices for a campaign, newest first
func (r *InvoiceRepository) FindByCampaignID(ctx context.Context, campaignID string) ([]*models.Invoice, error) {
	filter := bson.M{"campaignId": campaignID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []*models.Invoice
	if err = cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}
	return invoices, nil
}

// NextSequence atomically increments and returns the named counter
func (r *InvoiceRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"sequenceValue": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		SequenceValue int64 `bson:"sequenceValue"`
	}
	err := r.sequences.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.SequenceValue, nil
}
