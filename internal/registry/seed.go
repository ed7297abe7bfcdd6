// internal/registry/seed.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// The seed catalog is compiled into the binary. There is no on-disk state:
// the registry starts from this document on every boot.
//
//go:embed seed.json
var seedJSON []byte

const catalogSchema = `{
	"type": "object",
	"required": ["version", "activities"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"activities": {
			"type": "object",
			"minProperties": 1,
			"propertyNames": {"minLength": 1},
			"additionalProperties": {
				"type": "object",
				"required": ["description", "schedule", "max_participants", "participants"],
				"properties": {
					"description": {"type": "string", "minLength": 1},
					"schedule": {"type": "string", "minLength": 1},
					"max_participants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string", "minLength": 1},
						"uniqueItems": true
					}
				}
			}
		}
	}
}`

// ParseCatalog validates raw catalog JSON against the schema and decodes it.
func ParseCatalog(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &catalog, nil
}

// DefaultCatalog returns the embedded seed catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(seedJSON)
}
