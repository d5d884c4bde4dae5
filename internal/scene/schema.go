package scene

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema describes the scene file format as JSON Schema.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "Shapecast scene"
	schema.Description = "Static obstacles for the shapecast demo. YAML files use the same keys."
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scene: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
