package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kiprotichd/bizdesk-api/internal/application/service"
	"github.com/kiprotichd/bizdesk-api/internal/config"
	"github.com/kiprotichd/bizdesk-api/internal/infrastructure/database"
	"github.com/kiprotichd/bizdesk-api/internal/infrastructure/repository"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/handler"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/routes"
	"github.com/kiprotichd/bizdesk-api/pkg/email"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationItemRepo := repository.NewQuotationItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	offeringRepo := repository.NewServiceOfferingRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	messageReplyRepo := repository.NewMessageReplyRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.Host,
		SMTPPort:     cfg.Email.Port,
		SMTPUsername: cfg.Email.Username,
		SMTPPassword: cfg.Email.Password,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.From,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService)
	clientService := service.NewClientService(clientRepo)
	projectService := service.NewProjectService(projectRepo, clientRepo)
	quotationService := service.NewQuotationService(quotationRepo, quotationItemRepo, invoiceRepo, invoiceItemRepo, clientRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, clientRepo, emailService)
	paymentService := service.NewPaymentService(paymentRepo, invoiceRepo)
	offeringService := service.NewOfferingService(offeringRepo)
	messageService := service.NewMessageService(messageRepo, messageReplyRepo, emailService)
	dashboardService := service.NewDashboardService(analyticsRepo)
	importService := service.NewImportService(clientRepo, invoiceRepo, invoiceItemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Client:    handler.NewClientHandler(clientService),
		Project:   handler.NewProjectHandler(projectService),
		Quotation: handler.NewQuotationHandler(quotationService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Offering:  handler.NewOfferingHandler(offeringService),
		Message:   handler.NewMessageHandler(messageService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Import:    handler.NewImportHandler(importService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
