package config

import (
	"os"
	"strconv"
	"time"

	"quickorder/internal/intent"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis backs the catalog cache and the rate limiter when set.
	RedisURL            string
	CatalogCacheTTL     time.Duration
	CatalogWarmInterval time.Duration // 0 disables the background cache warmer

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting, requests per minute per IP
	RateLimitMax int

	// Parser
	KeywordsFile     string // env: KEYWORDS_FILE, default: "keywords.yaml"
	PreviewThreshold int    // env: PREVIEW_THRESHOLD, default: 50

	// Logging
	LogLevel string

	// Features
	EnableParseMetrics bool // Record parse outcomes to the database for Prometheus export
	SeedDevServices    bool // Seed the service catalog in development
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:         getEnv("DATABASE_URL", "postgres://localhost:5432/quickorder?sslmode=disable"),
		RedisURL:            getEnv("REDIS_URL", ""),
		CatalogCacheTTL:     getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		CatalogWarmInterval: getEnvDuration("CATALOG_WARM_INTERVAL", 0),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 300),
		KeywordsFile:        getEnv("KEYWORDS_FILE", "keywords.yaml"),
		PreviewThreshold:    getEnvInt("PREVIEW_THRESHOLD", intent.DefaultPreviewThreshold),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		EnableParseMetrics:  getEnv("ENABLE_PARSE_METRICS", "") != "",
		SeedDevServices:     getEnv("SEED_DEV_SERVICES", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// RedisEnabled reports whether a Redis URL is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != ""
}
