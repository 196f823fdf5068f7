package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/logger"
	"inventory/pkg/rabbitmq"
)

// App bundles the resources owned by one running process.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	MQ     *rabbitmq.Client // nil when RABBITMQ_URL is empty
	HTTP   *fiber.App
}

// NewApp opens storage, initializes the schema once and wires services and
// routes. Events are enabled only when cfg.RabbitMQURL is set.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := services.Bootstrap(ctx, repositories.NewSchemaManager(db)); err != nil {
		closeDB(db)
		return nil, err
	}

	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		publisher = mqClient
	} else {
		logger.Info().Msg("RABBITMQ_URL not set, inventory events disabled")
	}

	productService := services.NewProductService(repositories.NewGORMProductRepository(db), publisher)
	buyerService := services.NewBuyerService(repositories.NewGORMBuyerRepository(db), publisher)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewBuyerHandler(buyerService).RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": mqClient != nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return &App{
		Config: cfg,
		DB:     db,
		MQ:     mqClient,
		HTTP:   app,
	}, nil
}

// closeDB releases db on cleanup paths where the close error cannot be returned.
func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Warn().Err(err).Msg("failed to close database")
	}
}

// Close shuts down the HTTP server and releases the broker and database.
func (a *App) Close() error {
	var errs []error
	if err := a.HTTP.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("failed to shut down HTTP server: %w", err))
	}
	if a.MQ != nil {
		if err := a.MQ.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := database.Close(a.DB); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}
	return nil
}
