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

// Compile-time check to ensure ServiceRepository implements the interface
var _ repositories.ServiceRepository = (*ServiceRepository)(nil)

// ServiceRepository handles MongoDB operations for Service
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{
		collection: db.Collection("services"),
	}
}

// Create inserts a new service
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	service.ID = primitive.NewObjectID()
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, service)
	return err
}

// FindByServiceID finds a service by its stable identifier
func (r *ServiceRepository) FindByServiceID(ctx context.Context, serviceID string) (*models.Service, error) {
	var service models.Service
	filter := bson.M{"serviceId": serviceID}
	err := r.collection.FindOne(ctx, filter).Decode(&service)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &service, nil
}

// FindAll retrieves services with pagination and optional case-insensitive
// substring search over heading, description and content keys/values
func (r *ServiceRepository) FindAll(ctx context.Context, page, limit int, search string) ([]*models.Service, int64, error) {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"serviceHeading": regex},
			{"serviceDescription": regex},
			{"serviceContent.key": regex},
			{"serviceContent.value": regex},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var services []*models.Service
	if err = cursor.All(ctx, &services); err != nil {
		return nil, 0, err
	}
	if services == nil {
		services = []*models.Service{}
	}
	return services, total, nil
}

// Update updates an existing service
func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	service.UpdatedAt = time.Now()
	filter := bson.M{"serviceId": service.ServiceID}
	update := bson.M{"$set": bson.M{
		"serviceHeading":     service.ServiceHeading,
		"serviceDescription": service.ServiceDescription,
		"serviceContent":     service.ServiceContent,
		"updatedAt":          service.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a service by its stable identifier
func (r *ServiceRepository) Delete(ctx context.Context, serviceID string) error {
	filter := bson.M{"serviceId": serviceID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
