package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personakit/personakit/internal/cli"
	"github.com/personakit/personakit/pkg/charfile"
)

// execute runs the persona CLI with args and returns stdout, stderr, and the
// execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("persona_test", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "version")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.NotEmpty(t, stdout)
}

func TestRootCmd_UnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "--log_level=loud", "version")
	require.Error(t, err)
}

func TestSampleCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "sample")
	require.NoError(t, err)
	require.Equal(t, string(charfile.Sample()), stdout)
}

func TestSchemaCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "schema")
	require.NoError(t, err)
	require.Contains(t, stdout, `"properties"`)
	require.Contains(t, stdout, `"modelProvider"`)
	require.Contains(t, stdout, "Character Configuration")
}
