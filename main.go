package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"diario/internal/handlers"
	"diario/internal/middleware"
	"diario/internal/repositories"
	"diario/internal/services"
	"diario/pkg/database"
)

// NewApp builds the Fiber application from the current configuration:
// database connection, schema migration, repositories, services, handlers,
// and routes. Exposed so tests can construct the whole app.
func NewApp() (*fiber.App, error) {
	// --- Initialize Database ---
	dbConfig := database.Config{
		Driver: viper.GetString("DB_DRIVER"),
		DSN:    viper.GetString("DB_DSN"),
	}
	db, err := database.Connect(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	sessionRepo := repositories.NewGORMSessionRepository(db)
	entryRepo := repositories.NewGORMEntryRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo)
	entryService := services.NewEntryService(entryRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	entryHandler := handlers.NewEntryHandler(entryService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	entryHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "diario.db")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
