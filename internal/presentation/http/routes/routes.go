package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kipkoechd/fabworks-api/internal/config"
	domainRepo "github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/handler"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/middleware"
	"github.com/kipkoechd/fabworks-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Quotation *handler.QuotationHandler
	Document  *handler.DocumentHandler
	Lead      *handler.LeadHandler
	Promotion *handler.PromotionHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          zerolog.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
		registerStorefrontRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter, keyed by IP for unauthenticated calls
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			Burst:             deps.Cfg.RateLimit.Requests,
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
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

// registerStorefrontRoutes wires the public storefront surface. The lead
// endpoint accepts optional auth so idempotency keys can be scoped to a
// user when one is logged in.
func registerStorefrontRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	storefront := v1.Group("/storefront")
	{
		storefront.GET("/catalog", h.Product.Catalog)
		storefront.GET("/catalog/:slug", h.Product.CatalogItem)
		storefront.GET("/promotions", h.Promotion.ListLive)

		storefront.POST("/leads",
			middleware.OptionalAuthMiddleware(deps.JWTManager),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Lead.Create)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", middleware.RequirePermission("view-dashboard"), h.Dashboard.GetStats)

	// Organization settings
	registerSettingsRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Products and categories
	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)

	// Orders and order documents
	registerOrderRoutes(protected, h, deps)

	// Quotations
	registerQuotationRoutes(protected, h, deps)

	// Leads (back office)
	registerLeadRoutes(protected, h)

	// Promotions (back office)
	registerPromotionRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/organization", h.Settings.GetOrganization)
		settings.PUT("/organization", middleware.RequirePermission("manage-settings"), h.Settings.UpdateOrganization)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequirePermission("manage-products"))
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	categories.Use(middleware.RequirePermission("manage-categories"))
	{
		categories.GET("", h.Product.ListCategories)
		categories.POST("", h.Product.CreateCategory)
		categories.PUT("/:id", h.Product.UpdateCategory)
		categories.DELETE("/:id", h.Product.DeleteCategory)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.DELETE("/:id", h.Order.Delete)

		// Optional one-to-one satellite rows
		orders.PUT("/:id/shipping-address", h.Order.UpsertShippingAddress)
		orders.DELETE("/:id/shipping-address", h.Order.DeleteDetail("shipping-address"))
		orders.PUT("/:id/billing-address", h.Order.UpsertBillingAddress)
		orders.DELETE("/:id/billing-address", h.Order.DeleteDetail("billing-address"))
		orders.PUT("/:id/customer-detail", h.Order.UpsertCustomerDetail)
		orders.DELETE("/:id/customer-detail", h.Order.DeleteDetail("customer-detail"))
		orders.PUT("/:id/payment-detail", h.Order.UpsertPaymentDetail)
		orders.DELETE("/:id/payment-detail", h.Order.DeleteDetail("payment-detail"))

		orders.GET("/:id/document", h.Document.GetOrderDocument)
		orders.POST("/:id/print", middleware.RequirePermission("print-documents"), h.Document.PrintOrder)
		orders.GET("/:id/invoice.pdf", h.Document.OrderInvoicePDF)
		orders.GET("/:id/label.pdf", h.Document.OrderLabelPDF)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.DELETE("/:id", h.Quotation.Delete)

		quotations.GET("/:id/document", h.Document.GetQuotationDocument)
		quotations.POST("/:id/print", middleware.RequirePermission("print-documents"), h.Document.PrintQuotation)
		quotations.GET("/:id/document.pdf", h.Document.QuotationPDF)
	}
}

func registerLeadRoutes(protected *gin.RouterGroup, h *Handlers) {
	leads := protected.Group("/leads")
	leads.Use(middleware.RequirePermission("manage-leads"))
	{
		leads.GET("", h.Lead.List)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id/status", h.Lead.UpdateStatus)
		leads.DELETE("/:id", h.Lead.Delete)
	}
}

func registerPromotionRoutes(protected *gin.RouterGroup, h *Handlers) {
	promotions := protected.Group("/promotions")
	promotions.Use(middleware.RequirePermission("manage-promotions"))
	{
		promotions.GET("", h.Promotion.List)
		promotions.POST("", h.Promotion.Create)
		promotions.GET("/:id", h.Promotion.Get)
		promotions.PUT("/:id", h.Promotion.Update)
		promotions.DELETE("/:id", h.Promotion.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	printerGroup.Use(middleware.RequirePermission("print-documents"))
	{
		printerGroup.GET("/status", h.Document.PrinterStatus)
		printerGroup.POST("/test", h.Document.TestPrint)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
