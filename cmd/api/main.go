package main

import (
	"log"
	"os"

	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/config"
	"github.com/g2rism/backoffice-api/internal/infrastructure/database"
	"github.com/g2rism/backoffice-api/internal/infrastructure/repository"
	"github.com/g2rism/backoffice-api/internal/presentation/http/handler"
	"github.com/g2rism/backoffice-api/internal/presentation/http/routes"
	"github.com/g2rism/backoffice-api/pkg/cache"
	"github.com/g2rism/backoffice-api/pkg/email"
	"github.com/g2rism/backoffice-api/pkg/oauth"
	"github.com/g2rism/backoffice-api/pkg/utils"
	"github.com/gin-gonic/gin"
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

	// Seed default roles and permissions
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
	permissionRepo := repository.NewPermissionRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize dashboard cache (no-op when Redis is disabled)
	dashboardCache := cache.New(&cfg.Redis)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.From,
		FrontendURL:  cfg.App.URL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService)
	leadService := service.NewLeadService(leadRepo, dashboardCache)
	employeeService := service.NewEmployeeService(employeeRepo)
	saleService := service.NewSaleService(saleRepo, leadRepo, settingsRepo, dashboardCache)
	dashboardService := service.NewDashboardService(leadRepo, saleRepo, employeeRepo, dashboardCache)
	reportService := service.NewReportService(leadRepo, saleRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Start the follow-up reminder scheduler
	if cfg.Scheduler.Enabled {
		followUpService := service.NewFollowUpService(leadRepo, userRepo, settingsRepo, emailService)
		if err := followUpService.Start(cfg.Scheduler.FollowUpCron); err != nil {
			log.Printf("Warning: Failed to start follow-up scheduler: %v", err)
		} else {
			defer followUpService.Stop()
		}
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Lead:      handler.NewLeadHandler(leadService),
		Employee:  handler.NewEmployeeHandler(employeeService),
		Sale:      handler.NewSaleHandler(saleService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
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
