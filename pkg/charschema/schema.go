package charschema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultSchema validates character documents with unconstrained client and
// model provider identifiers.
var DefaultSchema = NewSchema(&SchemaConfig{})

// SchemaConfig tunes the parts of validation that are deployment-specific.
// The structural rules of the character schema itself are fixed.
type SchemaConfig struct {
	// AllowedClients restricts the values accepted in `clients`.
	// Empty means any string is accepted.
	AllowedClients []string `yaml:"allowedClients"`
	// AllowedModelProviders restricts the value of `modelProvider`.
	// Empty means any string is accepted.
	AllowedModelProviders []string `yaml:"allowedModelProviders"`
}

// ParseSchemaConfig reads a [SchemaConfig] from YAML.
func ParseSchemaConfig(data []byte) (*SchemaConfig, error) {
	c := &SchemaConfig{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshal schema config: %w", err)
	}

	return c, nil
}

// Schema validates parsed JSON documents against the character configuration
// schema.
type Schema struct {
	clientSet        map[string]bool
	providerSet      map[string]bool
	allowedClients   []string
	allowedProviders []string
}

// NewSchema creates a [Schema] using the given [SchemaConfig].
func NewSchema(c *SchemaConfig) *Schema {
	return &Schema{
		allowedClients:   c.AllowedClients,
		clientSet:        toSet(c.AllowedClients),
		allowedProviders: c.AllowedModelProviders,
		providerSet:      toSet(c.AllowedModelProviders),
	}
}

func toSet(vals []string) map[string]bool {
	if len(vals) == 0 {
		return nil
	}

	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}

	return set
}
