package charschema

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/personakit/personakit/pkg/personaerrors"
)

// Error codes attached to [FieldError]. They are stable across releases and
// safe to match on.
const (
	CodeInvalidType      = "invalid_type"
	CodeInvalidString    = "invalid_string"
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeTooSmall         = "too_small"
	CodeCustom           = "custom"
)

// PathFile is the synthetic field path used when the input document couldn't
// be parsed at all, as opposed to a schema violation at a real field.
const PathFile = "file"

// FieldError is one field-level schema violation.
type FieldError struct {
	// Path is the dotted location of the violation, e.g.
	// "messageExamples.0.0.content.text". It is [PathFile] for parse errors
	// and empty for violations of the document root itself.
	Path string
	// Message is a human-readable description of the violation.
	Message string
	// Code is one of the Code* constants.
	Code string
}

func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Result is the outcome of one validation pass: either a validated
// [CharacterConfig], or one or more field errors.
type Result struct {
	Config *CharacterConfig
	Errors []FieldError
}

// Valid reports whether validation passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err aggregates all field errors into a single error, or nil when valid.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}

	var merr error
	for _, fe := range r.Errors {
		merr = multierror.Append(merr, fe)
	}

	return fmt.Errorf("%w: %w", personaerrors.ErrInvalidCharacter, merr)
}
