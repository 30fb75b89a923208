package treetui

import (
	"github.com/personakit/personakit/pkg/jsonvalue"
)

// Row is one visible line of the rendered tree.
type Row struct {
	Value *jsonvalue.Value
	// Path is the dotted field path of this node; empty for the root.
	Path string
	// Label is the object key or array index naming this node under its
	// parent; empty for the root.
	Label string
	// Depth is the nesting level, 0 for the root.
	Depth int
	// Expanded reports whether this node currently shows its children.
	// Always false for scalars.
	Expanded bool
}

// Expandable reports whether the row is a non-empty array or object.
func (r Row) Expandable() bool {
	return !r.Value.IsScalar()
}

// Tree pairs a JSON value with an expansion-state table keyed by path.
// Collapsing a node hides its children but their own expansion states
// persist until the tree is replaced.
type Tree struct {
	root     *jsonvalue.Value
	expanded map[string]bool
}

// NewTree creates a [Tree] over root. All nodes start collapsed except the
// root, which honors expandRoot.
func NewTree(root *jsonvalue.Value, expandRoot bool) *Tree {
	t := &Tree{
		root:     root,
		expanded: map[string]bool{},
	}
	if expandRoot {
		t.expanded[""] = true
	}

	return t
}

// IsExpanded reports whether the node at path currently shows its children.
func (t *Tree) IsExpanded(path string) bool {
	return t.expanded[path]
}

// Toggle flips the expansion state of the node at path. It affects only that
// node's visibility of its direct children.
func (t *Tree) Toggle(path string) {
	t.expanded[path] = !t.expanded[path]
}

// ExpandAll marks every container node in the document as expanded.
func (t *Tree) ExpandAll() {
	t.expandRecursive("", t.root)
}

func (t *Tree) expandRecursive(path string, v *jsonvalue.Value) {
	if v.IsScalar() {
		return
	}

	t.expanded[path] = true

	for i, item := range v.Items() {
		t.expandRecursive(jsonvalue.JoinIndex(path, i), item)
	}

	for _, f := range v.Fields() {
		t.expandRecursive(jsonvalue.JoinPath(path, f.Name), f.Value)
	}
}

// CollapseAll discards all expansion state, collapsing every node including
// the root.
func (t *Tree) CollapseAll() {
	t.expanded = map[string]bool{}
}

// Rows returns the currently visible rows in depth-first document order:
// each node, then — only while it is expanded — its children, indented one
// level.
func (t *Tree) Rows() []Row {
	var rows []Row

	t.walk(&rows, t.root, "", "", 0)

	return rows
}

func (t *Tree) walk(rows *[]Row, v *jsonvalue.Value, path, label string, depth int) {
	expanded := !v.IsScalar() && t.expanded[path]

	*rows = append(*rows, Row{
		Value:    v,
		Path:     path,
		Label:    label,
		Depth:    depth,
		Expanded: expanded,
	})

	if !expanded {
		return
	}

	for i, item := range v.Items() {
		t.walk(rows, item, jsonvalue.JoinIndex(path, i), jsonvalue.JoinIndex("", i), depth+1)
	}

	for _, f := range v.Fields() {
		t.walk(rows, f.Value, jsonvalue.JoinPath(path, f.Name), f.Name, depth+1)
	}
}
