package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kipkoechd/fabworks-api/internal/application/service"
	"github.com/kipkoechd/fabworks-api/internal/config"
	"github.com/kipkoechd/fabworks-api/internal/infrastructure/database"
	"github.com/kipkoechd/fabworks-api/internal/infrastructure/repository"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/handler"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/routes"
	"github.com/kipkoechd/fabworks-api/pkg/email"
	"github.com/kipkoechd/fabworks-api/pkg/logger"
	"github.com/kipkoechd/fabworks-api/pkg/oauth"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
	"github.com/kipkoechd/fabworks-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Options{
		ServiceName: cfg.App.Name,
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFmt,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg, log); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
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
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shippingRepo := repository.NewOrderShippingAddressRepository(db)
	billingRepo := repository.NewOrderBillingAddressRepository(db)
	detailRepo := repository.NewOrderCustomerDetailRepository(db)
	paymentRepo := repository.NewOrderPaymentDetailRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	settingsRepo := repository.NewOrganizationSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize printer, falling back to null printer")
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService)
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, shippingRepo, billingRepo, detailRepo, paymentRepo)
	quotationService := service.NewQuotationService(quotationRepo, customerRepo)
	leadService := service.NewLeadService(leadRepo, emailService, log)
	promotionService := service.NewPromotionService(promotionRepo)
	settingsService := service.NewSettingsService(settingsRepo, &cfg.Organization)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, customerRepo, productRepo)
	documentService := service.NewDocumentService(
		orderRepo, shippingRepo, billingRepo, detailRepo, paymentRepo,
		quotationRepo, settingsService, thermalPrinter, cfg.Printer.Type, log,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService, categoryService),
		Order:     handler.NewOrderHandler(orderService),
		Quotation: handler.NewQuotationHandler(quotationService),
		Document:  handler.NewDocumentHandler(documentService),
		Lead:      handler.NewLeadHandler(leadService),
		Promotion: handler.NewPromotionHandler(promotionService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          log,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
