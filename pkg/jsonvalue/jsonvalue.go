package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the JSON type held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is one key/value pair of a JSON object, in declaration order.
type Field struct {
	Name  string
	Value *Value
}

// Value is one node of a parsed JSON document.
type Value struct {
	str    string
	num    string
	items  []*Value
	fields []Field
	kind   Kind
	b      bool
}

// Null returns a JSON null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a JSON boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a JSON number value from its source literal.
func Number(lit string) *Value {
	return &Value{kind: KindNumber, num: lit}
}

// String returns a JSON string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Array returns a JSON array value.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Object returns a JSON object value with the given fields, in order.
func Object(fields ...Field) *Value {
	return &Value{kind: KindObject, fields: fields}
}

func (v *Value) Kind() Kind {
	return v.kind
}

// IsScalar reports whether v holds a null, boolean, number, or string.
func (v *Value) IsScalar() bool {
	return v.kind != KindArray && v.kind != KindObject
}

// Bool returns the boolean value. Valid only for [KindBool].
func (v *Value) Bool() bool {
	return v.b
}

// Num returns the number's source literal. Valid only for [KindNumber].
func (v *Value) Num() string {
	return v.num
}

// Str returns the string value. Valid only for [KindString].
func (v *Value) Str() string {
	return v.str
}

// Items returns the elements of an array, in index order.
func (v *Value) Items() []*Value {
	return v.items
}

// Fields returns the key/value pairs of an object, in declaration order.
func (v *Value) Fields() []Field {
	return v.fields
}

// Len returns the element count of an array or object, and 0 for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Field returns the value of the named object key, if present.
func (v *Value) Field(name string) (*Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Index returns the i'th array element, or nil if out of range.
func (v *Value) Index(i int) *Value {
	if i < 0 || i >= len(v.items) {
		return nil
	}

	return v.items[i]
}

// Summary returns a one-line description of a container value, e.g.
// "Array(3)" or "Object{12}", and the scalar literal otherwise.
func (v *Value) Summary() string {
	switch v.kind {
	case KindArray:
		return fmt.Sprintf("Array(%d)", len(v.items))
	case KindObject:
		return fmt.Sprintf("Object{%d}", len(v.fields))
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.num
	case KindString:
		return strconv.Quote(v.str)
	default:
		return ""
	}
}

// MarshalJSON re-encodes the value, preserving object key order and number
// literals.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")

	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))

	case KindNumber:
		buf.WriteString(v.num)

	case KindString:
		b, err := json.Marshal(v.str)
		if err != nil {
			return fmt.Errorf("encode string: %w", err)
		}

		buf.Write(b)

	case KindArray:
		buf.WriteByte('[')

		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}

		buf.WriteByte(']')

	case KindObject:
		buf.WriteByte('{')

		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}

			b, err := json.Marshal(f.Name)
			if err != nil {
				return fmt.Errorf("encode key %q: %w", f.Name, err)
			}

			buf.Write(b)
			buf.WriteByte(':')

			if err := f.Value.encode(buf); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	}

	return nil
}
