package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharemitra/sharemitra-backend/internal/config"
	"github.com/sharemitra/sharemitra-backend/internal/handlers"
	"github.com/sharemitra/sharemitra-backend/internal/middleware"
)

// HandlerDependencies holds all the handlers needed for routes
type HandlerDependencies struct {
	ClientHandler   *handlers.ClientHandler
	ServiceHandler  *handlers.ServiceHandler
	CampaignHandler *handlers.CampaignHandler
	PaymentHandler  *handlers.PaymentHandler
	InvoiceHandler  *handlers.InvoiceHandler
	AdminHandler    *handlers.AdminHandler
	DocumentHandler *handlers.DocumentHandler
}

// SetupRouter builds the Gin engine with all routes and middleware
func SetupRouter(deps *HandlerDependencies, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.AllowedHosts))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminOnly := []gin.HandlerFunc{middleware.Auth(cfg), middleware.RequireRole("admin")}

	client := router.Group("/client")
	{
		client.POST("/generateOtp", deps.ClientHandler.GenerateOTP)
		client.POST("/register", deps.ClientHandler.Register)
		client.POST("/login", deps.ClientHandler.Login)
		client.POST("/getById", deps.ClientHandler.GetByID)
		client.GET("/getAll", append(adminOnly, deps.ClientHandler.GetAll)...)
		client.POST("/update", middleware.Auth(cfg), deps.ClientHandler.UpdatePassword)
		client.POST("/generateResetOtp", deps.ClientHandler.GenerateResetOTP)
		client.POST("/verifyResetOtp", deps.ClientHandler.ResetPassword)
	}

	service := router.Group("/service")
	{
		service.POST("/create", append(adminOnly, deps.ServiceHandler.Create)...)
		service.GET("/getAll", deps.ServiceHandler.GetAll)
		service.POST("/getById", deps.ServiceHandler.GetByID)
		service.POST("/update", append(adminOnly, deps.ServiceHandler.Update)...)
		service.POST("/delete", append(adminOnly, deps.ServiceHandler.Delete)...)
		service.POST("/deleteContent", append(adminOnly, deps.ServiceHandler.DeleteContent)...)
	}

	campaign := router.Group("/campaign")
	{
		campaign.POST("/create", middleware.Auth(cfg), deps.CampaignHandler.Create)
		campaign.POST("/update", middleware.Auth(cfg), deps.CampaignHandler.Update)
		campaign.GET("/getAll", append(adminOnly, deps.CampaignHandler.GetAll)...)
		campaign.POST("/active", middleware.Auth(cfg), deps.CampaignHandler.Active)
		campaign.POST("/previous", middleware.Auth(cfg), deps.CampaignHandler.Previous)
		campaign.POST("/delete", append(adminOnly, deps.CampaignHandler.Delete)...)
	}

	payment := router.Group("/payment")
	{
		payment.POST("/createOrder", middleware.Auth(cfg), deps.PaymentHandler.CreateOrder)
		payment.POST("/verify", deps.PaymentHandler.Verify)
	}

	invoice := router.Group("/invoice")
	{
		invoice.POST("/generate", middleware.Auth(cfg), deps.InvoiceHandler.Generate)
		invoice.POST("/by-campaignId", middleware.Auth(cfg), deps.InvoiceHandler.GetByCampaign)
		invoice.POST("/get-invoice-by-id", middleware.Auth(cfg), deps.InvoiceHandler.GetByID)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", deps.AdminHandler.Login)
		admin.POST("/updateStatus", append(adminOnly, deps.CampaignHandler.UpdateStatus)...)
		admin.POST("/updatePassword", append(adminOnly, deps.AdminHandler.UpdatePassword)...)
		admin.POST("/forgotPassword", deps.AdminHandler.ForgotPassword)
		admin.POST("/resetPassword", deps.AdminHandler.ResetPassword)
		admin.POST("/requestEmailUpdate", append(adminOnly, deps.AdminHandler.RequestEmailUpdate)...)
		admin.POST("/verifyEmailUpdate", append(adminOnly, deps.AdminHandler.VerifyEmailUpdate)...)
	}

	docs := router.Group("/docs")
	{
		docs.POST("/upsert", append(adminOnly, deps.DocumentHandler.Upsert)...)
		docs.POST("/getByType", deps.DocumentHandler.GetByType)
		docs.GET("/getAll", deps.DocumentHandler.GetAll)
	}

	return router
}
