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

// Compile-time check to ensure CampaignRepository implements the interface
var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository handles MongoDB operations for Campaign
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaigns"),
	}
}

// Create inserts a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, campaign)
	return err
}

// FindByCampaignID finds a campaign by its stable identifier
func (r *CampaignRepository) FindByCampaignID(ctx context.Context, campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	filter := bson.M{"campaignId": campaignID}
	err := r.collection.FindOne(ctx, filter).Decode(&campaign)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &campaign, nil
}

// FindAll retrieves all campaigns, newest first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err = cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, nil
}

// FindByClientAndStatus retrieves a client's campaigns in the given status
// with pagination and optional case-insensitive substring search
func (r *CampaignRepository) FindByClientAndStatus(ctx context.Context, clientID string, status models.CampaignStatus, page, limit int, search string) ([]*models.Campaign, int64, error) {
	filter := bson.M{
		"clientId": clientID,
		"status":   status,
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"serviceHeading": regex},
			{"link": regex},
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

	var campaigns []*models.Campaign
	if err = cursor.All(ctx, &campaigns); err != nil {
		return nil, 0, err
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, total, nil
}

// Update replaces a campaign's mutable fields
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	campaign.UpdatedAt = time.Now()
	filter := bson.M{"campaignId": campaign.CampaignID}
	update := bson.M{"$set": bson.M{
		"link":        campaign.Link,
		"actions":     campaign.Actions,
		"totalAmount": campaign.TotalAmount,
		"updatedAt":   campaign.UpdatedAt,
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

// UpdateStatus sets a campaign's status and returns the updated document
func (r *CampaignRepository) UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error) {
	filter := bson.M{"campaignId": campaignID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campaign models.Campaign
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// CompleteLatestPending marks the most recently created pending campaign
// for the client+service pair as Completed and returns it
func (r *CampaignRepository) CompleteLatestPending(ctx context.Context, clientID, serviceID string) (*models.Campaign, error) {
	filter := bson.M{
		"clientId":  clientID,
		"serviceId": serviceID,
		"status":    models.CampaignStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": models.CampaignStatusCompleted, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.M{"createdAt": -1}).
		SetReturnDocument(options.After)

	var campaign models.Campaign
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Delete removes a campaign and returns the deleted document
func (r *CampaignRepository) Delete(ctx context.Context, campaignID string) (*models.Campaign, error) {
	filter := bson.M{"campaignId": campaignID}

	var campaign models.Campaign
	err := r.collection.FindOneAndDelete(ctx, filter).Decode(&campaign)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}
