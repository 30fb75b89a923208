package charfile

import (
	_ "embed"
)

// Bundled sample character document, served by `persona sample` and used as
// a known-good fixture.
//
//go:embed sample.json
var sample []byte

// Sample returns the bundled sample character document as JSON text.
func Sample() []byte {
	return sample
}
