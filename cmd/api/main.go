package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/sharemitra/sharemitra-backend/api/routes"
	"github.com/sharemitra/sharemitra-backend/internal/config"
	"github.com/sharemitra/sharemitra-backend/internal/handlers"
	mongorepo "github.com/sharemitra/sharemitra-backend/internal/repositories/mongodb"
	"github.com/sharemitra/sharemitra-backend/internal/services"
	"github.com/sharemitra/sharemitra-backend/pkg/mailer"
	"github.com/sharemitra/sharemitra-backend/pkg/mongodb"
	"github.com/sharemitra/sharemitra-backend/pkg/razorpay"
)

func main() {
	// Load .env if present; real deployments use environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.WithError(err).Error("failed to disconnect from MongoDB")
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	serviceRepo := mongorepo.NewServiceRepository(db)
	campaignRepo := mongorepo.NewCampaignRepository(db)
	paymentRepo := mongorepo.NewPaymentRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	adminRepo := mongorepo.NewAdminRepository(db)
	invoiceRepo := mongorepo.NewInvoiceRepository(db)
	documentRepo := mongorepo.NewDocumentRepository(db)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := paymentRepo.EnsureIndexes(ctx); err != nil {
			log.WithError(err).Fatal("failed to ensure payment indexes")
		}
		cancel()
	}

	// External dependencies
	var gateway razorpay.Gateway
	if cfg.Razorpay.MockGateway {
		log.Warn("using MOCK payment gateway")
		gateway = razorpay.NewMockGateway()
	} else {
		gateway = razorpay.NewClient(cfg)
	}

	var mail mailer.Mailer
	if cfg.SMTP.MockMail {
		log.Warn("using MOCK mailer")
		mail = mailer.NewMockMailer()
	} else {
		mail = mailer.NewSMTPMailer(cfg)
	}

	// Services
	catalogService := services.NewCatalogService(serviceRepo)
	campaignService := services.NewCampaignService(campaignRepo, clientRepo, catalogService, mail)
	paymentService := services.NewPaymentService(paymentRepo, campaignRepo, clientRepo, catalogService, gateway, mail, cfg.Razorpay.KeySecret)
	clientService := services.NewClientService(clientRepo, mail, cfg)
	adminService := services.NewAdminService(adminRepo, mail, cfg)
	invoiceService := services.NewInvoiceService(invoiceRepo, campaignRepo, clientRepo, paymentRepo, cfg.Razorpay.KeySecret)
	documentService := services.NewDocumentService(documentRepo)

	// Handlers
	deps := &routes.HandlerDependencies{
		ClientHandler:   handlers.NewClientHandler(clientService),
		ServiceHandler:  handlers.NewServiceHandler(catalogService),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		PaymentHandler:  handlers.NewPaymentHandler(paymentService),
		InvoiceHandler:  handlers.NewInvoiceHandler(invoiceService),
		AdminHandler:    handlers.NewAdminHandler(adminService),
		DocumentHandler: handlers.NewDocumentHandler(documentService),
	}

	router := routes.SetupRouter(deps, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}
	log.Info("server stopped")
}
