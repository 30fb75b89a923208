package jsonvalue

import "strconv"

// JoinPath appends one path element to a dotted field path. The root path is
// the empty string, so JoinPath("", "name") is "name" and
// JoinPath("messageExamples.0", "1") is "messageExamples.0.1".
func JoinPath(base, elem string) string {
	if base == "" {
		return elem
	}

	return base + "." + elem
}

// JoinIndex appends a numeric array index to a dotted field path.
func JoinIndex(base string, i int) string {
	return JoinPath(base, strconv.Itoa(i))
}
