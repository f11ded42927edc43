package mongodb

import (
	"context"
	"strings"
	"time"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ClientRepository implements the interface
var _ repositories.ClientRepository = (*ClientRepository)(nil)

// ClientRepository handles MongoDB operations for Client
type ClientRepository struct {
	collection *mongo.Collection
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		collection: db.Collection("clients"),
	}
}

// Create inserts a new client. Email is stored lowercase.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	client.ID = primitive.NewObjectID()
	client.Email = strings.ToLower(client.Email)
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, client)
	return err
}

// FindByClientID finds a client by its stable identifier
func (r *ClientRepository) FindByClientID(ctx context.Context, clientID string) (*models.Client, error) {
	var client models.Client
	filter := bson.M{"clientId": clientID}
	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &client, nil
}

// FindByEmail finds a client by email (case-insensitive via lowercasing)
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	filter := bson.M{"email": strings.ToLower(email)}
	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &client, nil
}

// FindAll retrieves all clients
func (r *ClientRepository) FindAll(ctx context.Context) ([]*models.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []*models.Client
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	return clients, nil
}

// Update replaces an existing client document. Replacement (rather than
// $set) is what lets cleared OTP fields actually disappear from the
// stored document.
func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	client.Email = strings.ToLower(client.Email)
	client.UpdatedAt = time.Now()
	filter := bson.M{"clientId": client.ClientID}
	result, err := r.collection.ReplaceOne(ctx, filter, client)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
