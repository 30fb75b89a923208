// Package treetui renders a JSON document as a recursively collapsible tree.
//
// The interactive viewer is a Bubble Tea model with cursor navigation and
// per-node expand/collapse. Expansion state lives in a caller-owned table
// keyed by field path, so a node's descendants keep their own state while the
// node itself is collapsed. A static renderer produces the same rows as plain
// text for non-interactive output.
package treetui
