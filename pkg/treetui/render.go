package treetui

import (
	"strings"

	"github.com/personakit/personakit/pkg/jsonvalue"
)

// Render produces the tree as static text for non-interactive output. The
// root is expanded; when expandAll is set, every container node is.
func Render(root *jsonvalue.Value, expandAll bool) string {
	tree := NewTree(root, true)
	if expandAll {
		tree.ExpandAll()
	}

	rows := tree.Rows()

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}

	return strings.Join(lines, "\n")
}
