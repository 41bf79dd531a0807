package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"quickorder/internal/intent"
)

// Keyword file modes.
const (
	KeywordsModeMerge   = "merge"
	KeywordsModeReplace = "replace"
)

// KeywordsFile represents the structure of the keywords.yaml file.
// It extends or replaces the built-in parser dictionary.
type KeywordsFile struct {
	Mode         string                        `yaml:"mode"`          // "merge" (default) or "replace"
	Platforms    map[string]intent.Platform    `yaml:"platforms"`     // synonym -> platform slug
	ServiceTypes map[string]intent.ServiceType `yaml:"service_types"` // synonym -> service type slug
	DisplayNames intent.DisplayNameMapping     `yaml:"display_names"`
}

// LoadKeywordsFile loads the keywords file at path.
// Returns nil without error if the file doesn't exist.
func LoadKeywordsFile(path string) (*KeywordsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Keywords file is optional
			return nil, nil
		}
		return nil, err
	}

	var kf KeywordsFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Set defaults
	if kf.Mode == "" {
		kf.Mode = KeywordsModeMerge
	}
	if kf.Mode != KeywordsModeMerge && kf.Mode != KeywordsModeReplace {
		return nil, fmt.Errorf("parse %s: unknown mode %q", path, kf.Mode)
	}

	return &kf, nil
}

// Apply combines the file with the given base mappings. A nil file returns
// copies of the base mappings unchanged. File keywords replace any base
// keyword that normalises to the same lookup key.
func (kf *KeywordsFile) Apply(keywords intent.KeywordMapping, names intent.DisplayNameMapping) (intent.KeywordMapping, intent.DisplayNameMapping) {
	outKeywords := intent.KeywordMapping{
		Platforms:    map[string]intent.Platform{},
		ServiceTypes: map[string]intent.ServiceType{},
	}
	outNames := intent.DisplayNameMapping{
		Platforms:    map[intent.Platform]string{},
		ServiceTypes: map[intent.ServiceType]string{},
	}

	if kf == nil || kf.Mode != KeywordsModeReplace {
		maps.Copy(outKeywords.Platforms, keywords.Platforms)
		maps.Copy(outKeywords.ServiceTypes, keywords.ServiceTypes)
	}
	// Display names always merge: a missing label only changes presentation.
	maps.Copy(outNames.Platforms, names.Platforms)
	maps.Copy(outNames.ServiceTypes, names.ServiceTypes)

	if kf == nil {
		return outKeywords, outNames
	}

	overlay(outKeywords.Platforms, kf.Platforms)
	overlay(outKeywords.ServiceTypes, kf.ServiceTypes)
	maps.Copy(outNames.Platforms, kf.DisplayNames.Platforms)
	maps.Copy(outNames.ServiceTypes, kf.DisplayNames.ServiceTypes)

	return outKeywords, outNames
}

// overlay copies src into dst, first dropping dst keys that normalise to a
// key present in src.
func overlay[V any](dst, src map[string]V) {
	if len(src) == 0 {
		return
	}
	keys := make(map[string]struct{}, len(src))
	for raw := range src {
		keys[intent.NormalizeKeyword(raw)] = struct{}{}
	}
	maps.DeleteFunc(dst, func(raw string, _ V) bool {
		_, ok := keys[intent.NormalizeKeyword(raw)]
		return ok
	})
	maps.Copy(dst, src)
}

// BuildParser loads the keywords file at path (if any) on top of the
// built-in dictionary and returns a parser for it.
func BuildParser(path string) (*intent.Parser, error) {
	kf, err := LoadKeywordsFile(path)
	if err != nil {
		return nil, err
	}

	keywords, names := kf.Apply(intent.DefaultKeywords(), intent.DefaultDisplayNames())
	dict, err := intent.NewDictionary(keywords, names)
	if err != nil {
		return nil, fmt.Errorf("keywords %s: %w", path, err)
	}
	return intent.NewParser(dict), nil
}
