// Command seed bootstraps a fresh database with an admin account, a
// sample catalog entry and the standard policy documents.
//
// Usage:
//
//	go run ./cmd/scripts -email admin@sharemitra.com -password <password>
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/sharemitra/sharemitra-backend/internal/config"
	"github.com/sharemitra/sharemitra-backend/internal/models"
	mongorepo "github.com/sharemitra/sharemitra-backend/internal/repositories/mongodb"
	"github.com/sharemitra/sharemitra-backend/pkg/mongodb"
)

func main() {
	email := flag.String("email", "admin@sharemitra.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)

	seedAdmin(ctx, db, *email, *password)
	seedCatalog(ctx, db)
	seedDocuments(ctx, db)
}

func seedAdmin(ctx context.Context, db *mongo.Database, email, password string) {
	adminRepo := mongorepo.NewAdminRepository(db)

	if _, err := adminRepo.FindByEmail(ctx, email); err == nil {
		log.WithField("email", email).Info("admin already exists, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}

	admin := &models.Admin{
		AdminID:      uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.WithError(err).Fatal("failed to create admin")
	}
	log.WithField("email", email).Info("admin created")
}

func seedCatalog(ctx context.Context, db *mongo.Database) {
	serviceRepo := mongorepo.NewServiceRepository(db)

	if _, total, err := serviceRepo.FindAll(ctx, 1, 1, ""); err == nil && total > 0 {
		log.Info("catalog not empty, skipping sample service")
		return
	}

	service := &models.Service{
		ServiceID:          uuid.NewString(),
		ServiceHeading:     "Instagram Growth",
		ServiceDescription: "Boost your Instagram presence with real engagement.",
		ServiceContent: []models.ServiceContent{
			{ContentID: uuid.NewString(), Key: "Followers", Value: "5.00"},
			{ContentID: uuid.NewString(), Key: "Likes", Value: "2.50"},
			{ContentID: uuid.NewString(), Key: "Comments", Value: "7.00"},
		},
	}
	if err := serviceRepo.Create(ctx, service); err != nil {
		log.WithError(err).Fatal("failed to create sample service")
	}
	log.WithField("serviceId", service.ServiceID).Info("sample service created")
}

func seedDocuments(ctx context.Context, db *mongo.Database) {
	documentRepo := mongorepo.NewDocumentRepository(db)

	docs := []models.Document{
		{Type: models.DocumentTypePrivacy, Title: "Privacy Policy", Content: "Placeholder privacy policy."},
		{Type: models.DocumentTypeTerms, Title: "Terms and Conditions", Content: "Placeholder terms and conditions."},
		{Type: models.DocumentTypeCookie, Title: "Cookie Policy", Content: "Placeholder cookie policy."},
		{Type: models.DocumentTypeShipping, Title: "Shipping Policy", Content: "Placeholder shipping policy."},
		{Type: models.DocumentTypeReturn, Title: "Return Policy", Content: "Placeholder return policy."},
		{Type: models.DocumentTypeFAQ, Title: "Frequently Asked Questions", Content: "Placeholder FAQ."},
	}
	for i := range docs {
		if err := documentRepo.Upsert(ctx, &docs[i]); err != nil {
			log.WithError(err).WithField("type", docs[i].Type).Fatal("failed to upsert document")
		}
	}
	log.Info("policy documents seeded")
}
