package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-storefront/internal/config"
	"go-storefront/internal/gateway"
	"go-storefront/internal/handler"
	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/internal/service"
	"go-storefront/pkg/database"
	"go-storefront/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatal("Failed to migrate schema. \n", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	tokens := token.NewManager(cfg.SessionSecret, 24*time.Hour)
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey, cfg.Domain)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(productRepo, stripeGateway)

	authHandler := handler.NewAuthHandler(authService, tokens)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	stockHandler := handler.NewStockHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Storefront v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	handler.RegisterRoutes(app, userRepo, tokens, authHandler, catalogHandler, stockHandler, checkoutHandler)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
