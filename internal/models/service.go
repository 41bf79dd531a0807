package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Service is a purchasable catalog entry for one platform and service type.
type Service struct {
	ID              uuid.UUID `json:"id"`
	Platform        string    `json:"platform"`
	ServiceType     string    `json:"service_type"`
	Name            string    `json:"name"`
	RatePerThousand int64     `json:"rate_per_thousand"` // cents per 1000 units
	MinQuantity     int       `json:"min_quantity"`
	MaxQuantity     int       `json:"max_quantity"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EstimatePrice returns the price in cents for quantity units, rounded up.
// ok is false when the price does not fit in an int64.
func (s *Service) EstimatePrice(quantity int) (cents int64, ok bool) {
	if quantity <= 0 || s.RatePerThousand <= 0 {
		return 0, true
	}
	if int64(quantity) > (math.MaxInt64-999)/s.RatePerThousand {
		return 0, false
	}
	total := int64(quantity) * s.RatePerThousand
	return (total + 999) / 1000, true
}
