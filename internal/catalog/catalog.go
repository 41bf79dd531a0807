// Package catalog resolves parsed (platform, service type) pairs to
// purchasable services, caching lookups when a cache is configured.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quickorder/internal/db"
	"quickorder/internal/intent"
	"quickorder/internal/models"
)

// ErrNoService is returned when no active service matches the pair.
var ErrNoService = errors.New("no service for platform and service type")

// missMarker is cached for pairs known to have no service.
var missMarker = []byte("-")

// Finder looks up the service for a platform and service type.
type Finder interface {
	FindService(ctx context.Context, platform intent.Platform, serviceType intent.ServiceType) (*models.Service, error)
}

// Store is the subset of the database used by the catalog.
type Store interface {
	FindActiveService(ctx context.Context, platform, serviceType string) (*models.Service, error)
}

// Cache is a byte store with expiry. *redis.Storage satisfies it.
type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Catalog is a Finder backed by a Store with an optional Cache in front.
type Catalog struct {
	store  Store
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a catalog. A nil cache disables caching.
func New(store Store, cache Cache, ttl time.Duration, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{store: store, cache: cache, ttl: ttl, logger: logger}
}

// FindService returns the active service for the pair, or ErrNoService.
func (c *Catalog) FindService(ctx context.Context, platform intent.Platform, serviceType intent.ServiceType) (*models.Service, error) {
	if platform == "" || serviceType == "" {
		return nil, ErrNoService
	}

	key := cacheKey(platform, serviceType)
	if svc, hit, err := c.fromCache(key); hit {
		return svc, err
	}

	svc, err := c.store.FindActiveService(ctx, string(platform), string(serviceType))
	if errors.Is(err, db.ErrServiceNotFound) {
		c.toCache(key, missMarker)
		return nil, ErrNoService
	}
	if err != nil {
		return nil, fmt.Errorf("find service %s: %w", key, err)
	}

	if data, err := json.Marshal(svc); err == nil {
		c.toCache(key, data)
	}
	return svc, nil
}

// Warm writes the given services into the cache and returns how many were
// stored. It is a no-op without a cache.
func (c *Catalog) Warm(services []models.Service) int {
	if c.cache == nil {
		return 0
	}

	stored := 0
	for i := range services {
		svc := &services[i]
		data, err := json.Marshal(svc)
		if err != nil {
			continue
		}
		key := cacheKey(intent.Platform(svc.Platform), intent.ServiceType(svc.ServiceType))
		if err := c.cache.Set(key, data, c.ttl); err != nil {
			c.logger.Warn("catalog cache write failed", "key", key, "error", err)
			continue
		}
		stored++
	}
	return stored
}

func (c *Catalog) fromCache(key string) (*models.Service, bool, error) {
	if c.cache == nil {
		return nil, false, nil
	}

	data, err := c.cache.Get(key)
	if err != nil {
		c.logger.Warn("catalog cache read failed", "key", key, "error", err)
		return nil, false, nil
	}
	if data == nil {
		return nil, false, nil
	}
	if string(data) == string(missMarker) {
		return nil, true, ErrNoService
	}

	var svc models.Service
	if err := json.Unmarshal(data, &svc); err != nil {
		c.logger.Warn("catalog cache entry corrupt", "key", key, "error", err)
		return nil, false, nil
	}
	return &svc, true, nil
}

func (c *Catalog) toCache(key string, data []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(key, data, c.ttl); err != nil {
		c.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func cacheKey(platform intent.Platform, serviceType intent.ServiceType) string {
	return "service:" + string(platform) + ":" + string(serviceType)
}
