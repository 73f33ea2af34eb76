package i18n

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// StatusTranslations maps a route code to its status table
// (source-language status text -> secondary-language text).
type StatusTranslations map[string]map[string]string

// LoadStatusTranslations reads additional status translations from a YAML or
// JSON file shaped like:
//
//	Air USA to AM:
//	  "ՀՀ գրասենյակում": "In the Armenian Office"
//
// An empty path yields an empty set.
func LoadStatusTranslations(path string) (StatusTranslations, error) {
	if path == "" {
		return StatusTranslations{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading status translations: %w", err)
	}

	return ParseStatusTranslations(content)
}

func ParseStatusTranslations(content []byte) (StatusTranslations, error) {
	t := StatusTranslations{}
	if err := yaml.Unmarshal(content, &t); err != nil {
		return nil, fmt.Errorf("parsing status translations: %w", err)
	}
	return t, nil
}
