package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PlatformDisplayName returns the label for a platform slug, or the
// upper-cased slug when no label is configured.
func (d *Dictionary) PlatformDisplayName(slug string) string {
	if label, ok := d.platformLabels[Platform(slug)]; ok {
		return label
	}
	return strings.ToUpper(slug)
}

// ServiceTypeDisplayName returns the label for a service-type slug, or the
// slug with its first letter capitalised when no label is configured.
func (d *Dictionary) ServiceTypeDisplayName(slug string) string {
	if label, ok := d.serviceTypeLabels[ServiceType(slug)]; ok {
		return label
	}
	return capitalize(slug)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
