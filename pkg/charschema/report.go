package charschema

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/personakit/personakit/pkg/jsonvalue"
)

// ReportItem is one display-ready validation error: the raw field path, a
// friendlier rephrasing of the message, and an optional contextual
// suggestion.
type ReportItem struct {
	Path       string
	Message    string
	Suggestion string
}

// BuildReport enriches raw field errors for display.
func BuildReport(errs []FieldError) []ReportItem {
	items := make([]ReportItem, 0, len(errs))
	for _, fe := range errs {
		items = append(items, ReportItem{
			Path:       displayPath(fe.Path),
			Message:    friendlyMessage(fe),
			Suggestion: suggestionFor(fe.Path),
		})
	}

	return items
}

func displayPath(path string) string {
	if path == "" {
		return "document"
	}

	return path
}

func friendlyMessage(fe FieldError) string {
	switch {
	case fe.Message == "Required":
		return "This field is required and cannot be empty"
	case fe.Code == CodeTooSmall:
		return "This list cannot be empty — add at least one entry"
	case fe.Code == CodeInvalidString:
		return "This value is not in the expected format"
	default:
		return fe.Message
	}
}

// Contextual suggestions keyed by field-path substrings, checked in order.
var suggestions = []struct {
	substr string
	text   string
}{
	{"modelProvider", `Set a model provider identifier such as "openai" or "anthropic"`},
	{"clients", `List the client platforms this character runs on, e.g. "discord" or "telegram"`},
	{"plugins", "Plugin entries are package identifiers of installed plugins"},
	{"messageExamples", `Each example is a conversation: a non-empty list of turns, each with "user" and "content.text"`},
	{"style", `Style needs three non-empty lists: "all", "chat", and "post"`},
	{"secrets", "Secrets are string key/value pairs; quote every value"},
	{"voice", `Voice settings need a "model" string`},
	{"bio", "Add at least one biography line describing the character"},
	{"lore", "Add at least one background lore line"},
	{PathFile, "Check the document for syntax errors such as missing quotes, commas, or braces"},
}

func suggestionFor(path string) string {
	for _, s := range suggestions {
		if strings.Contains(path, s.substr) {
			return s.text
		}
	}

	return ""
}

// Top-level keys the schema knows about, used for near-miss detection.
var knownKeys = []string{
	"id", "name", "username", "clients", "modelProvider", "plugins",
	"settings", "system", "bio", "lore", "messageExamples", "postExamples",
	"adjectives", "topics", "style", "knowledge", "templates",
}

// KeyHints scans the document root for unknown keys that look like case
// variants of known fields (e.g. "model_provider" for "modelProvider") and
// returns one hint per near miss. Unknown keys with no close match are
// tolerated silently.
func KeyHints(doc *jsonvalue.Value) []string {
	if doc == nil || doc.Kind() != jsonvalue.KindObject {
		return nil
	}

	known := make(map[string]string, len(knownKeys))
	for _, k := range knownKeys {
		known[strcase.ToSnake(k)] = k
	}

	var hints []string

	for _, f := range doc.Fields() {
		if _, ok := known[strcase.ToSnake(f.Name)]; !ok {
			continue
		}

		canonical := known[strcase.ToSnake(f.Name)]
		if f.Name != canonical {
			hints = append(hints, fmt.Sprintf("Unknown key %q — did you mean %q?", f.Name, canonical))
		}
	}

	return hints
}
