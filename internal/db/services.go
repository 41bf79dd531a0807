package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"quickorder/internal/models"
)

// serviceColumns is the standard column list for service queries.
const serviceColumns = `id, platform, service_type, name, rate_per_thousand,
	min_quantity, max_quantity, active, created_at, updated_at`

// scanService scans a row into a Service struct.
func scanService(row pgx.Row) (*models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Platform,
		&s.ServiceType,
		&s.Name,
		&s.RatePerThousand,
		&s.MinQuantity,
		&s.MaxQuantity,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// scanServices scans multiple rows into a slice of Services.
func scanServices(rows pgx.Rows) ([]models.Service, error) {
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

// FindActiveService returns the active service for a platform and service type.
func (d *DB) FindActiveService(ctx context.Context, platform, serviceType string) (*models.Service, error) {
	row := d.Pool.QueryRow(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE platform = $1 AND service_type = $2 AND active
	`, platform, serviceType)
	return scanService(row)
}

// GetServiceByID returns a service by ID, active or not.
func (d *DB) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	return scanService(row)
}

// ListActiveServices returns active services, optionally filtered by platform.
func (d *DB) ListActiveServices(ctx context.Context, platform string) ([]models.Service, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE active AND ($1 = '' OR platform = $1)
		ORDER BY platform, service_type
	`, platform)
	if err != nil {
		return nil, err
	}
	return scanServices(rows)
}

// CreateService inserts an active service and fills in its generated fields.
func (d *DB) CreateService(ctx context.Context, s *models.Service) error {
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO services (platform, service_type, name, rate_per_thousand, min_quantity, max_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, active, created_at, updated_at
	`, s.Platform, s.ServiceType, s.Name, s.RatePerThousand, s.MinQuantity, s.MaxQuantity).
		Scan(&s.ID, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateService
		}
		return err
	}
	return nil
}

// DeactivateService marks a service inactive so it no longer matches lookups.
func (d *DB) DeactivateService(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `
		UPDATE services SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
