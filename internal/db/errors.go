package db

import "errors"

// Domain-level database error sentinels.
var (
	// Service catalog errors
	ErrServiceNotFound  = errors.New("service not found")
	ErrDuplicateService = errors.New("an active service already exists for this platform and service type")
)
