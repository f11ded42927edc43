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

// Compile-time check to ensure PaymentRepository implements the interface
var _ repositories.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository handles MongoDB operations for Payment
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create inserts a new payment row keyed by the gateway order id
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByOrderID finds a payment by the gateway order id
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	filter := bson.M{"orderId": orderID}
	err := r.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &payment, nil
}

// UpdateStatusFromCreated transitions a payment out of "created". The
// filter guards the state machine: terminal payments are never reopened
// or overwritten.
func (r *PaymentRepository) UpdateStatusFromCreated(ctx context.Context, orderID string, status models.PaymentStatus) error {
	filter := bson.M{"orderId": orderID, "status": models.PaymentStatusCreated}
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Approve conditionally transitions created -> approved and returns the
// updated payment. mongo.ErrNoDocuments means the payment was missing or
// already terminal.
func (r *PaymentRepository) Approve(ctx context.Context, orderID, paymentID, signature string) (*models.Payment, error) {
	now := time.Now()
	filter := bson.M{"orderId": orderID, "status": models.PaymentStatusCreated}
	update := bson.M{"$set": bson.M{
		"paymentId":  paymentID,
		"signature":  signature,
		"status":     models.PaymentStatusApproved,
		"approvedAt": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.Payment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// EnsureIndexes creates the unique index on orderId. Callers invoke this
// once at startup; duplicate gateway orders are a data corruption otherwise.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"orderId": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
