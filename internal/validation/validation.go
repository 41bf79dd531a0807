package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// SlugPattern defines the valid slug format: lowercase alphanumeric and hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// HandlePattern defines a valid account handle: @ followed by word characters, dots or hyphens.
var HandlePattern = regexp.MustCompile(`^@[\w.-]{1,64}$`)

// MaxSlugLength is the longest slug accepted in a path or query parameter.
const MaxSlugLength = 64

// ValidateSlug checks if a platform or service type slug matches the allowed pattern.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > MaxSlugLength {
		return false
	}
	return SlugPattern.MatchString(slug)
}

// ValidateQuantity checks a quantity against a service's bounds.
func ValidateQuantity(quantity, minQty, maxQty int) (bool, string) {
	if quantity <= 0 {
		return false, "Quantity is required"
	}
	if quantity < minQty {
		return false, fmt.Sprintf("Quantity must be at least %d", minQty)
	}
	if maxQty > 0 && quantity > maxQty {
		return false, fmt.Sprintf("Quantity must be at most %d", maxQty)
	}
	return true, ""
}

// ValidateTarget checks an order target: a handle, an http(s) URL, or a bare domain.
func ValidateTarget(target string) (bool, string) {
	if target == "" {
		return false, "Target is required"
	}
	if strings.HasPrefix(target, "@") {
		if !HandlePattern.MatchString(target) {
			return false, "Invalid handle"
		}
		return true, ""
	}
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	return ValidateURL(target)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
