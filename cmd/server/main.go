package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"quickorder/internal/catalog"
	"quickorder/internal/config"
	"quickorder/internal/db"
	"quickorder/internal/jobs"
	"quickorder/internal/metrics"
	"quickorder/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel, os.Stderr)

	// Load the keyword dictionary
	parser, err := config.BuildParser(cfg.KeywordsFile)
	if err != nil {
		log.Fatalf("Failed to load keywords: %v", err)
	}
	dict := parser.Dictionary()
	log.Printf("Loaded %d platform and %d service type keywords", dict.PlatformCount(), dict.ServiceTypeCount())

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() && cfg.SeedDevServices {
		if err := database.SeedDevServices(ctx); err != nil {
			log.Fatalf("Failed to seed services: %v", err)
		}
		log.Println("Seeded development service catalog")
	}

	// Redis backs the catalog cache and the rate limiter when configured
	var (
		limiterStorage fiber.Storage
		catalogCache   catalog.Cache
	)
	if cfg.RedisEnabled() {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		defer store.Close()
		limiterStorage = store
		catalogCache = store
		log.Println("Redis enabled for catalog cache and rate limiting")
	}

	if cfg.EnableParseMetrics {
		metrics.Init(database)
		log.Println("Parse outcome metrics enabled")
	}

	finder := catalog.New(database, catalogCache, cfg.CatalogCacheTTL, logger)

	// Background jobs
	jobsCtx, stopJobs := context.WithCancel(ctx)
	defer stopJobs()
	if catalogCache != nil && cfg.CatalogWarmInterval > 0 {
		warmer := jobs.NewCatalogWarmer(database, finder, cfg.CatalogWarmInterval)
		go warmer.Start(jobsCtx)
	}

	srv := server.New(cfg, limiterStorage)
	srv.RegisterRoutes(parser, database, finder)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopJobs()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
