package charschema

import (
	"encoding/json"
	"fmt"
)

// CharacterConfig describes a conversational agent's persona, behavior
// examples, and settings.
type CharacterConfig struct {
	// ID is an optional UUID identifying this character.
	ID string `json:"id,omitempty"`
	// Name is the character's display name.
	Name string `json:"name"`
	// Username is an optional account handle for the character.
	Username string `json:"username,omitempty"`
	// Clients lists the client platform identifiers this character runs on.
	Clients []string `json:"clients"`
	// ModelProvider identifies the inference backend.
	ModelProvider string `json:"modelProvider"`
	// Plugins optionally lists plugin package identifiers.
	Plugins []string `json:"plugins,omitempty"`
	// Settings holds optional runtime settings, including secrets and voice.
	Settings *Settings `json:"settings,omitempty"`
	// System is an optional free-text system prompt.
	System string `json:"system,omitempty"`
	// Bio holds biography lines.
	Bio []string `json:"bio"`
	// Lore holds background lore lines.
	Lore []string `json:"lore"`
	// MessageExamples holds example conversations, each a list of turns.
	MessageExamples [][]MessageExample `json:"messageExamples"`
	// PostExamples holds example standalone posts.
	PostExamples []string `json:"postExamples"`
	// Adjectives holds descriptive adjectives for the character.
	Adjectives []string `json:"adjectives"`
	// Topics holds subjects the character engages with.
	Topics []string `json:"topics"`
	// Style groups style directives by context.
	Style Style `json:"style"`
	// Knowledge optionally holds knowledge snippets.
	Knowledge []string `json:"knowledge,omitempty"`
	// Templates optionally overrides named prompt templates.
	Templates map[string]string `json:"templates,omitempty"`
}

// MessageExample is one turn of an example conversation.
type MessageExample struct {
	User    string         `json:"user"`
	Content MessageContent `json:"content"`
}

// MessageContent is the body of an example conversation turn.
type MessageContent struct {
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}

// Style groups style directives by the context they apply to.
type Style struct {
	All  []string `json:"all"`
	Chat []string `json:"chat"`
	Post []string `json:"post"`
}

// Settings is an open object: unknown keys are tolerated and preserved in
// Extra.
type Settings struct {
	Secrets map[string]string `json:"secrets,omitempty"`
	Voice   *VoiceSettings    `json:"voice,omitempty"`
	Extra   map[string]any    `json:"-"`
}

// VoiceSettings selects a voice synthesis model.
type VoiceSettings struct {
	Model string `json:"model"`
}

// UnmarshalJSON decodes known settings fields and collects all remaining keys
// into Extra.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type settings Settings // Shed methods to avoid recursion.

	var known settings
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal settings keys: %w", err)
	}

	delete(raw, "secrets")
	delete(raw, "voice")

	*s = Settings(known)

	if len(raw) == 0 {
		return nil
	}

	s.Extra = make(map[string]any, len(raw))

	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("unmarshal settings key %q: %w", k, err)
		}

		s.Extra[k] = val
	}

	return nil
}
