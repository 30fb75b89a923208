package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/personakit/personakit/pkg/jsonvalue"
	"github.com/personakit/personakit/pkg/personaerrors"
)

func TestParse_Scalars(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input   string
		kind    jsonvalue.Kind
		summary string
	}{
		"Null": {
			input:   `null`,
			kind:    jsonvalue.KindNull,
			summary: "null",
		},
		"True": {
			input:   `true`,
			kind:    jsonvalue.KindBool,
			summary: "true",
		},
		"Integer": {
			input:   `42`,
			kind:    jsonvalue.KindNumber,
			summary: "42",
		},
		"Float": {
			input:   `0.125`,
			kind:    jsonvalue.KindNumber,
			summary: "0.125",
		},
		"String": {
			input:   `"hello"`,
			kind:    jsonvalue.KindString,
			summary: `"hello"`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := jsonvalue.Parse([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.kind, v.Kind())
			require.Equal(t, tc.summary, v.Summary())
			require.True(t, v.IsScalar())
			require.Equal(t, 0, v.Len())
		})
	}
}

func TestParse_PreservesObjectKeyOrder(t *testing.T) {
	t.Parallel()

	v, err := jsonvalue.Parse([]byte(`{"zeta":1,"alpha":2,"mid":{"b":true,"a":null}}`))
	require.NoError(t, err)
	require.Equal(t, jsonvalue.KindObject, v.Kind())
	require.Equal(t, 3, v.Len())

	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Name)
	}

	require.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	mid, ok := v.Field("mid")
	require.True(t, ok)
	require.Equal(t, "b", mid.Fields()[0].Name)
	require.Equal(t, "a", mid.Fields()[1].Name)
}

func TestParse_Array(t *testing.T) {
	t.Parallel()

	v, err := jsonvalue.Parse([]byte(`[1,"two",[true]]`))
	require.NoError(t, err)
	require.Equal(t, jsonvalue.KindArray, v.Kind())
	require.Equal(t, 3, v.Len())
	require.Equal(t, "Array(3)", v.Summary())
	require.Equal(t, jsonvalue.KindArray, v.Index(2).Kind())
	require.Nil(t, v.Index(3))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"NotJSON":       `{ not json`,
		"Empty":         ``,
		"Truncated":     `{"a":`,
		"TrailingData":  `{} {}`,
		"BareWord":      `hello`,
		"UnclosedArray": `[1, 2`,
	}

	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := jsonvalue.Parse([]byte(input))
			require.Error(t, err)
			require.ErrorIs(t, err, personaerrors.ErrInvalidJSON)
		})
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"Object":  `{"zeta":1,"alpha":"two","nested":{"b":[true,null],"a":0.5}}`,
		"Array":   `[1,"two",{"k":false}]`,
		"Scalar":  `"hi"`,
		"Empties": `{"a":[],"b":{}}`,
	}

	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := jsonvalue.Parse([]byte(input))
			require.NoError(t, err)

			out, err := v.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, input, string(out))
		})
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "name", jsonvalue.JoinPath("", "name"))
	require.Equal(t, "settings.voice.model", jsonvalue.JoinPath("settings.voice", "model"))
	require.Equal(t, "messageExamples.0.1", jsonvalue.JoinIndex("messageExamples.0", 1))
}
