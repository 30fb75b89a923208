// Package jsonvalue provides an order-preserving tagged representation of JSON
// documents.
//
// Unlike [encoding/json] unmarshaling into map[string]any, a [Value] keeps
// object keys in declaration order and numbers as their source literals, so a
// document can be inspected and re-rendered exactly as authored.
package jsonvalue
