package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/personakit/personakit/pkg/personaerrors"
)

// Parse decodes a complete JSON document into a [Value] tree, preserving
// object key order. Trailing non-whitespace content is an error.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseNext(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", personaerrors.ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", personaerrors.ErrInvalidJSON)
	}

	return v, nil
}

func parseNext(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of input")
		}

		return nil, err
	}

	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}

	case nil:
		return Null(), nil

	case bool:
		return Bool(t), nil

	case json.Number:
		return Number(t.String()), nil

	case string:
		return String(t), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Value, error) {
	fields := []Field{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		child, err := parseNext(dec)
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{Name: key, Value: child})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return Object(fields...), nil
}

func parseArray(dec *json.Decoder) (*Value, error) {
	items := []*Value{}

	for dec.More() {
		child, err := parseNext(dec)
		if err != nil {
			return nil, err
		}

		items = append(items, child)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return Array(items...), nil
}
