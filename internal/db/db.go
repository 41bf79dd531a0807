package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickorder/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevServices inserts a starter catalog for development. Skips pairs that
// already have an active service.
func (d *DB) SeedDevServices(ctx context.Context) error {
	services := []struct {
		platform    string
		serviceType string
		name        string
		rate        int64
		min, max    int
	}{
		{"instagram", "followers", "Instagram Followers", 250, 100, 100000},
		{"instagram", "likes", "Instagram Likes", 90, 50, 50000},
		{"instagram", "views", "Instagram Reel Views", 20, 500, 5000000},
		{"tiktok", "followers", "TikTok Followers", 300, 100, 100000},
		{"tiktok", "likes", "TikTok Likes", 80, 50, 100000},
		{"tiktok", "views", "TikTok Views", 10, 1000, 10000000},
		{"youtube", "subscribers", "YouTube Subscribers", 1500, 50, 20000},
		{"youtube", "views", "YouTube Views", 120, 500, 1000000},
		{"twitter", "followers", "Twitter/X Followers", 400, 100, 50000},
		{"twitter", "retweets", "Twitter/X Retweets", 200, 20, 10000},
		{"linkedin", "company-followers", "LinkedIn Company Followers", 1200, 50, 10000},
		{"linkedin", "connections", "LinkedIn Connections", 1800, 50, 5000},
	}

	query := `
		INSERT INTO services (platform, service_type, name, rate_per_thousand, min_quantity, max_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (platform, service_type) WHERE active DO NOTHING
	`

	for _, s := range services {
		if _, err := d.Pool.Exec(ctx, query, s.platform, s.serviceType, s.name, s.rate, s.min, s.max); err != nil {
			return fmt.Errorf("failed to seed service %s/%s: %w", s.platform, s.serviceType, err)
		}
	}

	return nil
}
