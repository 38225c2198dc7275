package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiprotichd/bizdesk-api/internal/config"
	domainRepo "github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/handler"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/middleware"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Client    *handler.ClientHandler
	Project   *handler.ProjectHandler
	Quotation *handler.QuotationHandler
	Invoice   *handler.InvoiceHandler
	Payment   *handler.PaymentHandler
	Offering  *handler.OfferingHandler
	Message   *handler.MessageHandler
	Dashboard *handler.DashboardHandler
	Import    *handler.ImportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Public contact form
		v1.POST("/contact", h.Message.Submit)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.Summary)
	}

	registerClientRoutes(protected, h)
	registerProjectRoutes(protected, h)
	registerQuotationRoutes(protected, h)
	registerInvoiceRoutes(protected, h, deps)
	registerPaymentRoutes(protected, h)
	registerOfferingRoutes(protected, h)
	registerMessageRoutes(protected, h)
	registerImportRoutes(protected, h)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	clients.Use(middleware.RequirePermission("manage-clients"))
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerProjectRoutes(protected *gin.RouterGroup, h *Handlers) {
	projects := protected.Group("/projects")
	projects.Use(middleware.RequirePermission("manage-projects"))
	{
		projects.GET("", h.Project.List)
		projects.POST("", h.Project.Create)
		projects.GET("/:id", h.Project.Get)
		projects.PUT("/:id", h.Project.Update)
		projects.DELETE("/:id", h.Project.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/convert", h.Quotation.Convert)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission("manage-invoices"))
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/send", h.Invoice.Send)
		invoices.GET("/:id/payments", h.Payment.ListForInvoice)
		// Payment recording is idempotent for the same reason
		invoices.POST("/:id/payments", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Payment.Create)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers) {
	payments := protected.Group("/payments")
	payments.Use(middleware.RequirePermission("manage-payments"))
	{
		payments.GET("", h.Payment.List)
		payments.DELETE("/:id", h.Payment.Delete)
	}
}

func registerOfferingRoutes(protected *gin.RouterGroup, h *Handlers) {
	services := protected.Group("/services")
	services.Use(middleware.RequirePermission("manage-services"))
	{
		services.GET("", h.Offering.List)
		services.POST("", h.Offering.Create)
		services.GET("/:id", h.Offering.Get)
		services.PUT("/:id", h.Offering.Update)
		services.DELETE("/:id", h.Offering.Delete)
	}
}

func registerMessageRoutes(protected *gin.RouterGroup, h *Handlers) {
	messages := protected.Group("/messages")
	messages.Use(middleware.RequirePermission("manage-messages"))
	{
		messages.GET("", h.Message.List)
		messages.GET("/:id", h.Message.Get)
		messages.POST("/:id/reply", h.Message.Reply)
		messages.POST("/:id/archive", h.Message.Archive)
		messages.DELETE("/:id", h.Message.Delete)
	}
}

func registerImportRoutes(protected *gin.RouterGroup, h *Handlers) {
	importGroup := protected.Group("/import")
	importGroup.Use(middleware.RequireRole("admin", "super-admin"))
	{
		importGroup.POST("/clients", h.Import.Clients)
		importGroup.POST("/invoices", h.Import.Invoices)
	}
}
