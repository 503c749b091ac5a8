package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validación del registro final contra el esquema del tipo: toda clave
// requerida presente y valores string o lista de strings.

func recordSchema(requiredKeys []string) map[string]any {
	valueSchema := map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
	properties := make(map[string]any, len(requiredKeys))
	for _, key := range requiredKeys {
		properties[key] = valueSchema
	}
	return map[string]any{
		"type":       "object",
		"required":   requiredKeys,
		"properties": properties,
	}
}

// ValidateRecord chequea el registro mergeado contra el esquema de su tipo
func ValidateRecord(record map[string]any, requiredKeys []string) error {
	schemaBytes, err := json.Marshal(recordSchema(requiredKeys))
	if err != nil {
		return fmt.Errorf("error al serializar esquema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("error al registrar esquema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("error al compilar esquema: %w", err)
	}

	// Round-trip para que los valores queden en los tipos que espera el
	// validador
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error al serializar registro: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("error al deserializar registro: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("el registro no cumple el esquema: %w", err)
	}
	return nil
}
