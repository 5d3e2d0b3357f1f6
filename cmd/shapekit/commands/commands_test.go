package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/shapekit/internal/testutil"
)

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

// withStdin replaces os.Stdin with data for the duration of the test.
func withStdin(t *testing.T, data string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		_ = r.Close()
	})
}

// writeServiceConfig writes testutil.NewServiceConfig as YAML and returns its path.
func writeServiceConfig(t *testing.T) string {
	t.Helper()
	return testutil.WriteTempYAML(t, testutil.NewServiceConfig())
}
