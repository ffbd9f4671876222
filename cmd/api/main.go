package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sokoni/sokoni-api/internal/application/service"
	"github.com/sokoni/sokoni-api/internal/config"
	"github.com/sokoni/sokoni-api/internal/infrastructure/database"
	"github.com/sokoni/sokoni-api/internal/infrastructure/repository"
	"github.com/sokoni/sokoni-api/internal/presentation/http/handler"
	"github.com/sokoni/sokoni-api/internal/presentation/http/routes"
	"github.com/sokoni/sokoni-api/pkg/utils"
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
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	clientRepo := repository.NewClientRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, supplierRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, supplierRepo, clientRepo)
	cartService := service.NewCartService(productRepo, invoiceService)
	orderService := service.NewOrderService(orderRepo, productRepo, clientRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	clientService := service.NewClientService(clientRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Cart:     handler.NewCartHandler(cartService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Order:    handler.NewOrderHandler(orderService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Client:   handler.NewClientHandler(clientService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
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
