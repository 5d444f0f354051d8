// CUE schema validation code
package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var defaultSchema []byte

// SchemaDefinition is the CUE definition a config document must satisfy.
const SchemaDefinition = "#Config"

// ValidateWithCue validates decoded config values against a CUE schema
// carrying a #Config definition.
func ValidateWithCue(values map[string]any, schema []byte) error {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileBytes(schema, cue.Filename("schema.cue"))
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", err)
	}
	def := schemaVal.LookupPath(cue.ParsePath(SchemaDefinition))
	if !def.Exists() {
		return fmt.Errorf("CUE schema has no %s definition", SchemaDefinition)
	}

	if values == nil {
		values = map[string]any{}
	}
	configVal := ctx.Encode(values)
	if err := configVal.Err(); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	// Merge values with schema
	final := def.Unify(configVal)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
