package treetui_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/personakit/personakit/pkg/jsonvalue"
	"github.com/personakit/personakit/pkg/treetui"
)

func mustParse(t *testing.T, input string) *jsonvalue.Value {
	t.Helper()

	v, err := jsonvalue.Parse([]byte(input))
	require.NoError(t, err)

	return v
}

func TestTree_ScalarHasNoChildren(t *testing.T) {
	t.Parallel()

	for name, input := range map[string]string{
		"String": `"hi"`,
		"Number": `3`,
		"Bool":   `false`,
		"Null":   `null`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := treetui.NewTree(mustParse(t, input), true)
			rows := tree.Rows()
			require.Len(t, rows, 1)
			require.False(t, rows[0].Expandable())
			require.False(t, rows[0].Expanded)
		})
	}
}

func TestTree_RootExpansionFlag(t *testing.T) {
	t.Parallel()

	doc := `{"a":1,"b":2,"c":3}`

	collapsed := treetui.NewTree(mustParse(t, doc), false)
	require.Len(t, collapsed.Rows(), 1)

	expanded := treetui.NewTree(mustParse(t, doc), true)
	rows := expanded.Rows()
	require.Len(t, rows, 4)

	// Object children are labeled by key, in declaration order.
	require.Equal(t, "a", rows[1].Label)
	require.Equal(t, "b", rows[2].Label)
	require.Equal(t, "c", rows[3].Label)
}

func TestTree_ExpandedChildCountMatchesLen(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string
		want  int
	}{
		"Object": {input: `{"x":1,"y":{"z":2}}`, want: 2},
		"Array":  {input: `[10,20,30,40]`, want: 4},
		"Empty":  {input: `{}`, want: 0},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := treetui.NewTree(mustParse(t, tc.input), true)
			require.Len(t, tree.Rows(), 1+tc.want)
		})
	}
}

func TestTree_ArrayChildrenLabeledByIndex(t *testing.T) {
	t.Parallel()

	tree := treetui.NewTree(mustParse(t, `["a","b"]`), true)
	rows := tree.Rows()
	require.Len(t, rows, 3)
	require.Equal(t, "0", rows[1].Label)
	require.Equal(t, "1", rows[2].Label)
	require.Equal(t, "0", rows[1].Path)
	require.Equal(t, 1, rows[1].Depth)
}

func TestTree_ToggleTwiceRestoresRowCount(t *testing.T) {
	t.Parallel()

	tree := treetui.NewTree(mustParse(t, `{"list":[1,2,3]}`), true)
	before := len(tree.Rows())

	tree.Toggle("list")
	require.Len(t, tree.Rows(), before+3)

	tree.Toggle("list")
	require.Len(t, tree.Rows(), before)
}

func TestTree_DescendantStatePersistsWhileHidden(t *testing.T) {
	t.Parallel()

	tree := treetui.NewTree(mustParse(t, `{"a":{"b":{"c":1}}}`), true)

	tree.Toggle("a")
	tree.Toggle("a.b")
	require.Len(t, tree.Rows(), 4) // root, a, a.b, a.b.c

	// Collapsing "a" hides its subtree but "a.b" stays expanded.
	tree.Toggle("a")
	require.Len(t, tree.Rows(), 2)
	require.True(t, tree.IsExpanded("a.b"))

	tree.Toggle("a")
	require.Len(t, tree.Rows(), 4)
}

func TestTree_ExpandAllCollapseAll(t *testing.T) {
	t.Parallel()

	tree := treetui.NewTree(mustParse(t, `{"a":{"b":[1,2]},"c":"x"}`), false)

	tree.ExpandAll()
	// root, a, a.b, a.b.0, a.b.1, c
	require.Len(t, tree.Rows(), 6)

	tree.CollapseAll()
	require.Len(t, tree.Rows(), 1)
}

func TestTree_PathsAreDotted(t *testing.T) {
	t.Parallel()

	tree := treetui.NewTree(mustParse(t, `{"messageExamples":[[{"content":{"text":"hey"}}]]}`), true)
	tree.ExpandAll()

	var paths []string
	for _, row := range tree.Rows() {
		paths = append(paths, row.Path)
	}

	require.Contains(t, paths, "messageExamples.0.0.content.text")
}
