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

// Compile-time check to ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)

// AdminRepository handles MongoDB operations for Admin
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{
		collection: db.Collection("admins"),
	}
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	admin.Email = strings.ToLower(admin.Email)
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, admin)
	return err
}

// FindByAdminID finds an admin by its stable identifier
func (r *AdminRepository) FindByAdminID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin
	filter := bson.M{"adminId": adminID}
	err := r.collection.FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &admin, nil
}

// FindByEmail finds an admin by email
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	filter := bson.M{"email": strings.ToLower(email)}
	err := r.collection.FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &admin, nil
}

// Update updates an existing admin. OTP fields are replaced wholesale so
// cleared requests are actually removed from the document.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now()
	filter := bson.M{"adminId": admin.AdminID}

	set := bson.M{
		"email":        strings.ToLower(admin.Email),
		"passwordHash": admin.PasswordHash,
		"updatedAt":    admin.UpdatedAt,
	}
	unset := bson.M{}
	if admin.ResetOTP != "" {
		set["resetOtp"] = admin.ResetOTP
		set["resetOtpExpiry"] = admin.ResetOTPExpiry
	} else {
		unset["resetOtp"] = ""
		unset["resetOtpExpiry"] = ""
	}
	if admin.EmailChange != nil {
		set["emailChange"] = admin.EmailChange
	} else {
		unset["emailChange"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
