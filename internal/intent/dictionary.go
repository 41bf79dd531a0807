package intent

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Dictionary construction errors.
var (
	ErrEmptyKeyword       = errors.New("empty keyword")
	ErrUnknownPlatform    = errors.New("unknown platform slug")
	ErrUnknownServiceType = errors.New("unknown service type slug")
	ErrConflictingKeyword = errors.New("keyword maps to more than one slug")
)

// KeywordMapping maps synonyms to canonical slugs for both domains.
type KeywordMapping struct {
	Platforms    map[string]Platform    `yaml:"platforms"`
	ServiceTypes map[string]ServiceType `yaml:"service_types"`
}

// DisplayNameMapping maps canonical slugs to human-readable labels.
// It need not cover every slug.
type DisplayNameMapping struct {
	Platforms    map[Platform]string    `yaml:"platforms"`
	ServiceTypes map[ServiceType]string `yaml:"service_types"`
}

type platformKeyword struct {
	word string
	slug Platform
}

type serviceKeyword struct {
	word string
	slug ServiceType
}

// Dictionary is the compiled, read-only form of a KeywordMapping and
// DisplayNameMapping. It is safe for concurrent use.
type Dictionary struct {
	platforms    map[string]Platform
	serviceTypes map[string]ServiceType

	// longest first
	platformsByLength  []platformKeyword
	multiWordServices  []serviceKeyword
	singleWordServices []serviceKeyword

	platformLabels    map[Platform]string
	serviceTypeLabels map[ServiceType]string
}

// NewDictionary validates and compiles the given mappings. Keys are
// NFC-normalised and lowercased; every value must be a known slug, and two
// keys that normalise alike must agree on it.
func NewDictionary(keywords KeywordMapping, names DisplayNameMapping) (*Dictionary, error) {
	d := &Dictionary{
		platforms:         make(map[string]Platform, len(keywords.Platforms)),
		serviceTypes:      make(map[string]ServiceType, len(keywords.ServiceTypes)),
		platformLabels:    make(map[Platform]string, len(names.Platforms)),
		serviceTypeLabels: make(map[ServiceType]string, len(names.ServiceTypes)),
	}

	for raw, slug := range keywords.Platforms {
		key := NormalizeKeyword(raw)
		if key == "" {
			return nil, fmt.Errorf("platform keyword %q: %w", raw, ErrEmptyKeyword)
		}
		if !slug.Valid() {
			return nil, fmt.Errorf("platform keyword %q -> %q: %w", raw, slug, ErrUnknownPlatform)
		}
		if prev, ok := d.platforms[key]; ok && prev != slug {
			return nil, fmt.Errorf("platform keyword %q -> %q, %q: %w", key, prev, slug, ErrConflictingKeyword)
		}
		d.platforms[key] = slug
	}

	for raw, slug := range keywords.ServiceTypes {
		key := NormalizeKeyword(raw)
		if key == "" {
			return nil, fmt.Errorf("service type keyword %q: %w", raw, ErrEmptyKeyword)
		}
		if !slug.Valid() {
			return nil, fmt.Errorf("service type keyword %q -> %q: %w", raw, slug, ErrUnknownServiceType)
		}
		if prev, ok := d.serviceTypes[key]; ok && prev != slug {
			return nil, fmt.Errorf("service type keyword %q -> %q, %q: %w", key, prev, slug, ErrConflictingKeyword)
		}
		d.serviceTypes[key] = slug
	}

	for slug, label := range names.Platforms {
		d.platformLabels[slug] = label
	}
	for slug, label := range names.ServiceTypes {
		d.serviceTypeLabels[slug] = label
	}

	for word, slug := range d.platforms {
		d.platformsByLength = append(d.platformsByLength, platformKeyword{word: word, slug: slug})
	}
	sort.Slice(d.platformsByLength, func(i, j int) bool {
		return longerFirst(d.platformsByLength[i].word, d.platformsByLength[j].word)
	})

	for word, slug := range d.serviceTypes {
		kw := serviceKeyword{word: word, slug: slug}
		if strings.Contains(word, " ") {
			d.multiWordServices = append(d.multiWordServices, kw)
		} else {
			d.singleWordServices = append(d.singleWordServices, kw)
		}
	}
	sort.Slice(d.multiWordServices, func(i, j int) bool {
		return longerFirst(d.multiWordServices[i].word, d.multiWordServices[j].word)
	})
	sort.Slice(d.singleWordServices, func(i, j int) bool {
		return longerFirst(d.singleWordServices[i].word, d.singleWordServices[j].word)
	})

	return d, nil
}

// MustNewDictionary is like NewDictionary but panics on invalid input.
// Intended for package-level defaults built from literals.
func MustNewDictionary(keywords KeywordMapping, names DisplayNameMapping) *Dictionary {
	d, err := NewDictionary(keywords, names)
	if err != nil {
		panic(err)
	}
	return d
}

// PlatformCount returns the number of platform synonyms.
func (d *Dictionary) PlatformCount() int {
	return len(d.platforms)
}

// ServiceTypeCount returns the number of service-type synonyms.
func (d *Dictionary) ServiceTypeCount() int {
	return len(d.serviceTypes)
}

// longerFirst orders by rune length descending, then lexicographically so the
// order does not depend on map iteration.
func longerFirst(a, b string) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la > lb
	}
	return a < b
}

// normalizeKey folds a keyword or input text into the form used for lookups.
func NormalizeKeyword(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
