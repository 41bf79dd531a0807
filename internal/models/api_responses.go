package models

import "quickorder/internal/intent"

// ParseRequest is the body accepted by the parse and quick-order endpoints.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse contains a parsed order intent with display labels.
type ParseResponse struct {
	intent.ParsedOrder
	PlatformName    string `json:"platform_name,omitempty"`
	ServiceTypeName string `json:"service_type_name,omitempty"`
	Ready           bool   `json:"ready"`
}

// DisplayNameResponse contains the label resolved for a slug.
type DisplayNameResponse struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// QuickOrderResponse is an order preview: the parse, the matching service
// and the estimated price.
type QuickOrderResponse struct {
	Parse          ParseResponse `json:"parse"`
	Service        *Service      `json:"service"`
	EstimatedPrice int64         `json:"estimated_price"` // cents
}
