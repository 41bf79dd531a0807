package models

import "time"

// Parse outcome constants
const (
	OutcomeComplete = "complete"
	OutcomePreview  = "preview"
	OutcomePartial  = "partial"
	OutcomeEmpty    = "empty"
)

// ParseLookup represents a per-intent hit count by outcome.
type ParseLookup struct {
	Platform    string
	ServiceType string
	Outcome     string
	Count       int64
	LastSeenAt  time.Time
}
