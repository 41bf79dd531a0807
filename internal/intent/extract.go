package intent

import "strings"

// ExtractPlatform resolves a platform from normalized text. A whole-word
// match wins, first word first; otherwise the longest synonym contained
// anywhere in the text.
func (d *Dictionary) ExtractPlatform(text string) (Platform, bool) {
	for _, word := range strings.Fields(text) {
		if slug, ok := d.platforms[word]; ok {
			return slug, true
		}
	}

	for _, kw := range d.platformsByLength {
		if strings.Contains(text, kw.word) {
			return kw.slug, true
		}
	}
	return "", false
}

// ExtractServiceType resolves a service type from normalized text using, in
// order: compound phrases, multi-word synonyms, whole words, then the
// longest single-word synonym contained in the text.
func (d *Dictionary) ExtractServiceType(text string) (ServiceType, bool) {
	if strings.Contains(text, "followers") {
		if strings.Contains(text, "company") {
			return CompanyFollowers, true
		}
		if strings.Contains(text, "profile") {
			return Followers, true
		}
	}

	for _, kw := range d.multiWordServices {
		if strings.Contains(text, kw.word) {
			return kw.slug, true
		}
	}

	for _, word := range strings.Fields(text) {
		if slug, ok := d.serviceTypes[word]; ok {
			return slug, true
		}
	}

	for _, kw := range d.singleWordServices {
		if strings.Contains(text, kw.word) {
			return kw.slug, true
		}
	}
	return "", false
}

// ExtractTarget returns the order destination from text in its original
// casing: a scheme URL, else a bare domain, else an @handle.
func ExtractTarget(text string) (string, bool) {
	if m := schemeURLPattern.FindString(text); m != "" {
		return m, true
	}
	if m := bareDomainPattern.FindString(text); m != "" {
		return m, true
	}
	if m := handlePattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
