package charschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/personakit/personakit/pkg/jsonvalue"
)

// Required non-empty list-of-string fields of the document root.
var requiredStringLists = []string{"bio", "lore", "postExamples", "adjectives", "topics"}

// ValidateJSON parses raw JSON text and validates it. Text that isn't valid
// JSON at all yields exactly one synthetic error at [PathFile].
func (s *Schema) ValidateJSON(data []byte) Result {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return Result{Errors: []FieldError{{
			Path:    PathFile,
			Message: "Invalid JSON format",
			Code:    CodeCustom,
		}}}
	}

	return s.Validate(doc)
}

// Validate checks one parsed document against the schema. All independent
// violations are collected in a single pass.
func (s *Schema) Validate(doc *jsonvalue.Value) Result {
	p := &pass{schema: s}
	p.document(doc)

	if len(p.errs) > 0 {
		return Result{Errors: p.errs}
	}

	cfg, err := decodeConfig(doc)
	if err != nil {
		return Result{Errors: []FieldError{{
			Path:    "",
			Message: fmt.Sprintf("Failed to decode document: %v", err),
			Code:    CodeCustom,
		}}}
	}

	return Result{Config: cfg}
}

func decodeConfig(doc *jsonvalue.Value) (*CharacterConfig, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	cfg := &CharacterConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// pass collects field errors over one document traversal.
type pass struct {
	schema *Schema
	errs   []FieldError
}

func (p *pass) add(path, code, msg string) {
	p.errs = append(p.errs, FieldError{Path: path, Message: msg, Code: code})
}

func expectedMsg(want string, got *jsonvalue.Value) string {
	return fmt.Sprintf("Expected %s, received %s", want, got.Kind())
}

func enumMsg(allowed []string, got string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}

	return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'",
		strings.Join(quoted, " | "), got)
}

func (p *pass) document(doc *jsonvalue.Value) {
	if doc.Kind() != jsonvalue.KindObject {
		p.add("", CodeInvalidType, expectedMsg("object", doc))

		return
	}

	p.id(doc)
	p.requiredString(doc, "", "name")
	p.optionalString(doc, "", "username")
	p.clients(doc)
	p.modelProvider(doc)
	p.stringList(doc, "", "plugins", listOpts{})
	p.settings(doc)
	p.optionalString(doc, "", "system")

	for _, key := range requiredStringLists {
		p.stringList(doc, "", key, listOpts{required: true, nonEmpty: true})
	}

	p.messageExamples(doc)
	p.style(doc)
	p.stringList(doc, "", "knowledge", listOpts{})
	p.templates(doc)
}

func (p *pass) id(doc *jsonvalue.Value) {
	v, ok := doc.Field("id")
	if !ok {
		return
	}

	if v.Kind() != jsonvalue.KindString {
		p.add("id", CodeInvalidType, expectedMsg("string", v))

		return
	}

	if _, err := uuid.Parse(v.Str()); err != nil {
		p.add("id", CodeInvalidString, "Invalid UUID")
	}
}

func (p *pass) clients(doc *jsonvalue.Value) {
	p.stringList(doc, "", "clients", listOpts{
		required: true,
		nonEmpty: true,
		allowed:  p.schema.allowedClients,
		set:      p.schema.clientSet,
	})
}

func (p *pass) modelProvider(doc *jsonvalue.Value) {
	v, ok := doc.Field("modelProvider")
	if !ok {
		p.add("modelProvider", CodeInvalidType, "Required")

		return
	}

	if v.Kind() != jsonvalue.KindString {
		p.add("modelProvider", CodeInvalidType, expectedMsg("string", v))

		return
	}

	if p.schema.providerSet != nil && !p.schema.providerSet[v.Str()] {
		p.add("modelProvider", CodeInvalidEnumValue, enumMsg(p.schema.allowedProviders, v.Str()))
	}
}

func (p *pass) requiredString(obj *jsonvalue.Value, base, key string) {
	path := jsonvalue.JoinPath(base, key)

	v, ok := obj.Field(key)
	if !ok {
		p.add(path, CodeInvalidType, "Required")

		return
	}

	if v.Kind() != jsonvalue.KindString {
		p.add(path, CodeInvalidType, expectedMsg("string", v))
	}
}

func (p *pass) optionalString(obj *jsonvalue.Value, base, key string) {
	v, ok := obj.Field(key)
	if !ok {
		return
	}

	if v.Kind() != jsonvalue.KindString {
		p.add(jsonvalue.JoinPath(base, key), CodeInvalidType, expectedMsg("string", v))
	}
}

type listOpts struct {
	set      map[string]bool
	allowed  []string
	required bool
	nonEmpty bool
}

// stringList validates a list-of-strings field. Optional lists are only
// checked when present; element type violations are reported per index.
func (p *pass) stringList(obj *jsonvalue.Value, base, key string, opts listOpts) {
	path := jsonvalue.JoinPath(base, key)

	v, ok := obj.Field(key)
	if !ok {
		if opts.required {
			p.add(path, CodeInvalidType, "Required")
		}

		return
	}

	if v.Kind() != jsonvalue.KindArray {
		p.add(path, CodeInvalidType, expectedMsg("array", v))

		return
	}

	if opts.nonEmpty && v.Len() == 0 {
		p.add(path, CodeTooSmall, "Array must contain at least 1 element(s)")
	}

	for i, item := range v.Items() {
		itemPath := jsonvalue.JoinIndex(path, i)

		if item.Kind() != jsonvalue.KindString {
			p.add(itemPath, CodeInvalidType, expectedMsg("string", item))

			continue
		}

		if opts.set != nil && !opts.set[item.Str()] {
			p.add(itemPath, CodeInvalidEnumValue, enumMsg(opts.allowed, item.Str()))
		}
	}
}

func (p *pass) messageExamples(doc *jsonvalue.Value) {
	v, ok := doc.Field("messageExamples")
	if !ok {
		p.add("messageExamples", CodeInvalidType, "Required")

		return
	}

	if v.Kind() != jsonvalue.KindArray {
		p.add("messageExamples", CodeInvalidType, expectedMsg("array", v))

		return
	}

	if v.Len() == 0 {
		p.add("messageExamples", CodeTooSmall, "Array must contain at least 1 element(s)")
	}

	for i, conv := range v.Items() {
		convPath := jsonvalue.JoinIndex("messageExamples", i)

		if conv.Kind() != jsonvalue.KindArray {
			p.add(convPath, CodeInvalidType, expectedMsg("array", conv))

			continue
		}

		if conv.Len() == 0 {
			p.add(convPath, CodeTooSmall, "Array must contain at least 1 element(s)")
		}

		for j, turn := range conv.Items() {
			p.messageTurn(jsonvalue.JoinIndex(convPath, j), turn)
		}
	}
}

func (p *pass) messageTurn(path string, turn *jsonvalue.Value) {
	if turn.Kind() != jsonvalue.KindObject {
		p.add(path, CodeInvalidType, expectedMsg("object", turn))

		return
	}

	p.requiredString(turn, path, "user")

	contentPath := jsonvalue.JoinPath(path, "content")

	content, ok := turn.Field("content")
	if !ok {
		p.add(contentPath, CodeInvalidType, "Required")

		return
	}

	if content.Kind() != jsonvalue.KindObject {
		p.add(contentPath, CodeInvalidType, expectedMsg("object", content))

		return
	}

	p.requiredString(content, contentPath, "text")
	p.optionalString(content, contentPath, "action")
}

func (p *pass) style(doc *jsonvalue.Value) {
	v, ok := doc.Field("style")
	if !ok {
		p.add("style", CodeInvalidType, "Required")

		return
	}

	if v.Kind() != jsonvalue.KindObject {
		p.add("style", CodeInvalidType, expectedMsg("object", v))

		return
	}

	for _, key := range []string{"all", "chat", "post"} {
		p.stringList(v, "style", key, listOpts{required: true, nonEmpty: true})
	}
}

func (p *pass) settings(doc *jsonvalue.Value) {
	v, ok := doc.Field("settings")
	if !ok {
		return
	}

	if v.Kind() != jsonvalue.KindObject {
		p.add("settings", CodeInvalidType, expectedMsg("object", v))

		return
	}

	// Open object: unknown keys under settings are tolerated.
	if secrets, ok := v.Field("secrets"); ok {
		p.secrets(secrets)
	}

	if voice, ok := v.Field("voice"); ok {
		p.voice(voice)
	}
}

func (p *pass) secrets(secrets *jsonvalue.Value) {
	if secrets.Kind() != jsonvalue.KindObject {
		p.add("settings.secrets", CodeInvalidType, expectedMsg("object", secrets))

		return
	}

	for _, f := range secrets.Fields() {
		if f.Value.Kind() != jsonvalue.KindString {
			p.add(jsonvalue.JoinPath("settings.secrets", f.Name),
				CodeInvalidType, expectedMsg("string", f.Value))
		}
	}
}

func (p *pass) voice(voice *jsonvalue.Value) {
	if voice.Kind() != jsonvalue.KindObject {
		p.add("settings.voice", CodeInvalidType, expectedMsg("object", voice))

		return
	}

	p.requiredString(voice, "settings.voice", "model")
}

func (p *pass) templates(doc *jsonvalue.Value) {
	v, ok := doc.Field("templates")
	if !ok {
		return
	}

	if v.Kind() != jsonvalue.KindObject {
		p.add("templates", CodeInvalidType, expectedMsg("object", v))

		return
	}

	for _, f := range v.Fields() {
		if f.Value.Kind() != jsonvalue.KindString {
			p.add(jsonvalue.JoinPath("templates", f.Name),
				CodeInvalidType, expectedMsg("string", f.Value))
		}
	}
}
