package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the raw YAML against the embedded JSON schema and reports keys
// the schema doesn't know, usually typos silently ignored by the decoder
func VerifyAgainstEmbeddedSchema(data []byte) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	var unknown []string
	collectUnknown(resolveRef(&schema, schema.Definitions), schema.Definitions, raw, "", &unknown)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

func collectUnknown(s *jsonschema.Schema, defs jsonschema.Definitions, raw map[string]any, prefix string, unknown *[]string) {
	if s == nil || s.Properties == nil {
		return
	}
	for k, v := range raw {
		prop, ok := s.Properties.Get(k)
		if !ok {
			*unknown = append(*unknown, prefix+k)
			continue
		}
		if nested, isMap := v.(map[string]any); isMap {
			collectUnknown(resolveRef(prop, defs), defs, nested, prefix+k+".", unknown)
		}
	}
}

func resolveRef(s *jsonschema.Schema, defs jsonschema.Definitions) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	return defs[strings.TrimPrefix(s.Ref, "#/$defs/")]
}
