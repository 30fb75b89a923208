// Package charschema defines the character configuration schema and validates
// parsed JSON documents against it.
//
// Validation never short-circuits: one pass over the document collects every
// field-level violation, each tagged with a dotted field path (e.g.
// "messageExamples.0.0.content.text"), a human-readable message, and a stable
// error code.
package charschema
