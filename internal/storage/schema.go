package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing the data file.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := reflector.Reflect(&model.Ledger{})
	schema.Title = "Confessional ledger"
	schema.Description = "Running karma total, confession history and per-category tally."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
