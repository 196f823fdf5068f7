package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/logger"
	"inventory/pkg/rabbitmq"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const serviceName = "inventory"

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("inventory exited with error")
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:     serviceName,
		Usage:    "Run the inventory service or manage its database",
		Compiled: time.Now(),
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "Start the HTTP API",
				Action:  func(c *cli.Context) error { return serve(c.Context) },
			},
			{
				Name:   "init-schema",
				Usage:  "Create the products and buyers tables if they are absent",
				Action: func(c *cli.Context) error { return initSchema(c.Context) },
			},
			{
				Name:  "version",
				Usage: "Print the build version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, Version)
					return nil
				},
			},
		},
	}
}

// loadConfig reads configuration and sets up logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, err
	}
	logger.Init(serviceName, cfg.IsDevelopment())
	if !logger.SetLevel(cfg.LogLevel) {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}
	return cfg, nil
}

func initSchema(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeDB(db)

	return services.Bootstrap(ctx, repositories.NewSchemaManager(db))
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}

	if app.MQ != nil {
		err := app.MQ.ConsumeInventoryEvents(func(event rabbitmq.InventoryEvent) error {
			logger.Info().
				Str("event_id", event.ID).
				Str("type", string(event.Type)).
				Int64("entity_id", event.EntityID).
				Msg("received inventory event")
			return nil
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to start inventory event consumer")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.AppPort).Msg("starting server")
		listenErr <- app.HTTP.Listen(cfg.AppPort)
	}()

	select {
	case <-quit:
		logger.Info().Msg("shutting down server")
	case err := <-listenErr:
		if err != nil {
			if closeErr := app.Close(); closeErr != nil {
				logger.Warn().Err(closeErr).Msg("failed to release resources")
			}
			return fmt.Errorf("server failed to start: %w", err)
		}
	}

	if err := app.Close(); err != nil {
		return err
	}
	logger.Info().Msg("server gracefully stopped")
	return nil
}
