// Package intent extracts a structured order intent (quantity, platform,
// service type, target and a confidence score) from one line of free-text,
// multilingual input. Parsing is rule-based, synchronous and stateless
// apart from the immutable Dictionary it is built with.
package intent

import "strings"

// DefaultPreviewThreshold is the match percentage at which callers usually
// start showing an order preview.
const DefaultPreviewThreshold = 50

// ParsedOrder is the result of a single Parse call.
type ParsedOrder struct {
	Quantity        *int        `json:"quantity"`
	Platform        Platform    `json:"platform,omitempty"`
	ServiceType     ServiceType `json:"service_type,omitempty"`
	Target          string      `json:"target,omitempty"`
	MatchPercentage int         `json:"match_percentage"`
}

// HasQuantity reports whether a quantity was found.
func (o ParsedOrder) HasQuantity() bool { return o.Quantity != nil }

// HasPlatform reports whether a platform was found.
func (o ParsedOrder) HasPlatform() bool { return o.Platform != "" }

// HasServiceType reports whether a service type was found.
func (o ParsedOrder) HasServiceType() bool { return o.ServiceType != "" }

// HasTarget reports whether a target was found.
func (o ParsedOrder) HasTarget() bool { return o.Target != "" }

// QuantityValue returns the quantity, or 0 when absent.
func (o ParsedOrder) QuantityValue() int {
	if o.Quantity == nil {
		return 0
	}
	return *o.Quantity
}

// Parser parses order intents against a Dictionary.
type Parser struct {
	dict *Dictionary
}

// NewParser creates a parser backed by dict.
func NewParser(dict *Dictionary) *Parser {
	return &Parser{dict: dict}
}

// Dictionary returns the dictionary the parser was built with.
func (p *Parser) Dictionary() *Dictionary {
	return p.dict
}

// Parse extracts an order intent from input. It never fails: anything it
// cannot recognise is left absent and lowers the match percentage.
func (p *Parser) Parse(input string) ParsedOrder {
	normalized := NormalizeKeyword(input)
	if normalized == "" {
		return ParsedOrder{}
	}

	var order ParsedOrder
	if q, ok := ExtractQuantity(normalized); ok {
		order.Quantity = &q
	}
	if platform, ok := p.dict.ExtractPlatform(normalized); ok {
		order.Platform = platform
	}
	if serviceType, ok := p.dict.ExtractServiceType(normalized); ok {
		order.ServiceType = serviceType
	}
	// Handles and URLs keep the casing the user typed.
	if target, ok := ExtractTarget(strings.TrimSpace(input)); ok {
		order.Target = target
	}

	order.MatchPercentage = Score(order.HasQuantity(), order.HasPlatform(), order.HasServiceType(), order.HasTarget())
	return order
}

// Ready reports whether order is confident enough to preview.
func (p *Parser) Ready(order ParsedOrder, threshold int) bool {
	return order.MatchPercentage >= threshold
}

// PlatformDisplayName returns the display label for a platform slug.
func (p *Parser) PlatformDisplayName(slug string) string {
	return p.dict.PlatformDisplayName(slug)
}

// ServiceTypeDisplayName returns the display label for a service-type slug.
func (p *Parser) ServiceTypeDisplayName(slug string) string {
	return p.dict.ServiceTypeDisplayName(slug)
}

var defaultParser = NewParser(MustNewDictionary(DefaultKeywords(), DefaultDisplayNames()))

// Default returns the parser built from the built-in dictionary.
func Default() *Parser {
	return defaultParser
}

// Parse parses input with the default parser.
func Parse(input string) ParsedOrder {
	return defaultParser.Parse(input)
}

// GetPlatformDisplayName returns the default label for a platform slug.
func GetPlatformDisplayName(slug string) string {
	return defaultParser.PlatformDisplayName(slug)
}

// GetServiceTypeDisplayName returns the default label for a service-type slug.
func GetServiceTypeDisplayName(slug string) string {
	return defaultParser.ServiceTypeDisplayName(slug)
}
