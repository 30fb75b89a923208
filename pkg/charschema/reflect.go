package charschema

import (
	"encoding/json"
	"fmt"

	invopopjsonschema "github.com/invopop/jsonschema"

	"github.com/personakit/personakit/pkg/personaerrors"
)

// GenerateJSONSchema returns the JSON Schema document describing
// [CharacterConfig], reflected from the Go types.
func GenerateJSONSchema() ([]byte, error) {
	r := &invopopjsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	s := r.Reflect(&CharacterConfig{})
	s.Title = "Character Configuration"
	s.Description = "A conversational agent's persona, behavior examples, and settings."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", personaerrors.ErrJSONMarshal, err)
	}

	return data, nil
}
