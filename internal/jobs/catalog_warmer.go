package jobs

import (
	"context"
	"log"
	"time"

	"quickorder/internal/models"
)

// ServiceLister lists active catalog services.
type ServiceLister interface {
	ListActiveServices(ctx context.Context, platform string) ([]models.Service, error)
}

// Warmer stores services in the catalog cache.
type Warmer interface {
	Warm(services []models.Service) int
}

// CatalogWarmer periodically loads every active service into the catalog
// cache so lookups from the parse path rarely reach the database.
type CatalogWarmer struct {
	lister   ServiceLister
	warmer   Warmer
	interval time.Duration
}

// NewCatalogWarmer creates a new catalog warmer.
func NewCatalogWarmer(lister ServiceLister, warmer Warmer, interval time.Duration) *CatalogWarmer {
	return &CatalogWarmer{
		lister:   lister,
		warmer:   warmer,
		interval: interval,
	}
}

// Start begins the background warm loop. It blocks until ctx is done.
func (w *CatalogWarmer) Start(ctx context.Context) {
	log.Printf("Catalog warmer started (interval: %v)", w.interval)

	// Run immediately on start
	w.warmAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Catalog warmer stopped")
			return
		case <-ticker.C:
			w.warmAll(ctx)
		}
	}
}

// warmAll loads all active services into the cache.
func (w *CatalogWarmer) warmAll(ctx context.Context) int {
	services, err := w.lister.ListActiveServices(ctx, "")
	if err != nil {
		log.Printf("Catalog warmer: failed to list services: %v", err)
		return 0
	}

	if len(services) == 0 {
		return 0
	}

	return w.warmer.Warm(services)
}
