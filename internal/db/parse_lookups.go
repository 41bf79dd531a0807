package db

import (
	"context"

	"quickorder/internal/models"
)

// IncrementParseLookup upserts a parse lookup count by outcome.
func (d *DB) IncrementParseLookup(ctx context.Context, platform, serviceType, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO parse_lookups (platform, service_type, outcome, count, last_seen_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (platform, service_type, outcome) DO UPDATE
		SET count = parse_lookups.count + 1, last_seen_at = NOW()
	`, platform, serviceType, outcome)
	return err
}

// GetAllParseLookups returns all parse lookup rows for metrics export.
func (d *DB) GetAllParseLookups(ctx context.Context) ([]models.ParseLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT platform, service_type, outcome, count, last_seen_at FROM parse_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.ParseLookup
	for rows.Next() {
		var l models.ParseLookup
		if err := rows.Scan(&l.Platform, &l.ServiceType, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
