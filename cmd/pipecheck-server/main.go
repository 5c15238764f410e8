// Package main is the entry point for the pipecheck validation service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/gatewerk/pipecheck/pkg/api"
	"github.com/gatewerk/pipecheck/pkg/catalog"
	"github.com/gatewerk/pipecheck/pkg/config"
	"github.com/gatewerk/pipecheck/pkg/logging"
)

var (
	// Command-line flags
	configPath = flag.String("config", "", "Path to config file")
	version    = flag.Bool("version", false, "Print version information")
)

// Version information
const (
	AppVersion = "0.1.0"
	AppName    = "pipecheck-server"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", AppName, AppVersion)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	server := api.NewServer(cfg, logger, buildCatalog(cfg))

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-stop:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			log.Fatalf("Error during shutdown: %v", err)
		}
	}
}

// loadConfig loads the configuration from the specified path or falls back
// to defaults with environment overrides.
func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.LoadConfig(*configPath)
	}
	return config.DefaultConfig(), nil
}

// buildCatalog assembles the configured catalog, or nil when no catalog URL
// is set.
func buildCatalog(cfg *config.Config) catalog.Catalog {
	if cfg.Catalog.URL == "" {
		return nil
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Token)
	ttl := time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second

	var cache catalog.Cache
	switch cfg.Catalog.Cache {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Catalog.Redis.Addr,
			Password: cfg.Catalog.Redis.Password,
			DB:       cfg.Catalog.Redis.DB,
		})
		cache = catalog.NewRedisCache(rdb, ttl)
	default:
		cache = catalog.NewMemoryCache(ttl)
	}

	return catalog.NewCachingCatalog(client, cache)
}
