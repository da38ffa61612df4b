// Estate API - HTTP gateway over the Muktalchal document collections.
//
// The service maps each HTTP route to a single MongoDB operation: users,
// property listings, gallery images, and blog posts. There is no business
// logic between the HTTP boundary and the store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/muktalchal/estate-api/internal/api"
	"github.com/muktalchal/estate-api/internal/blog"
	"github.com/muktalchal/estate-api/internal/gallery"
	"github.com/muktalchal/estate-api/internal/infrastructure/config"
	"github.com/muktalchal/estate-api/internal/infrastructure/logging"
	"github.com/muktalchal/estate-api/internal/infrastructure/mongodb"
	"github.com/muktalchal/estate-api/internal/listing"
	"github.com/muktalchal/estate-api/internal/user"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Best-effort .env loading; deployments set real environment variables.
	_ = godotenv.Load() //nolint:errcheck // A missing .env file is the normal production case

	log := logging.Default()
	log.Info("starting Estate API",
		"version", version,
		"commit", commit,
	)

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Connect to MongoDB; Connect pings before returning, so the store is
	// known reachable before the listener starts.
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer func() {
		log.Info("closing MongoDB connection")
		if closeErr := mongoClient.Close(context.Background()); closeErr != nil {
			log.Error("error closing MongoDB", "error", closeErr)
		}
	}()
	log.Info("MongoDB connected", "database", cfg.Mongo.Database)

	if err := mongoClient.EnsureIndexes(ctx, user.CollectionName); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}
	log.Info("indexes ensured", "collection", user.CollectionName)

	db := mongoClient.Database()
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		Logger:   log,
		Users:    user.NewMongoRepository(db),
		Listings: listing.NewMongoRepository(db),
		Gallery:  gallery.NewMongoRepository(db),
		Blogs:    blog.NewMongoRepository(db),
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server listening", "host", cfg.API.Host, "port", cfg.API.Port)

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses ESTATEAPI_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ESTATEAPI_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
