package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portableConfig = `{
  "runtimeOptions": {
    "tfm": "net6.0",
    "framework": {"name": "Microsoft.NETCore.App", "version": "6.0.0"}
  }
}`

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return buf
}

func TestInspectCommand_Portable(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, "app.runtimeconfig.json"), []byte(portableConfig), 0o644))

	buf := captureOutput(t)
	err := runInspect(inspectCmd, []string{tmpDir})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "framework: net6.0")
	assert.Contains(t, buf.String(), "portable:  true")
}

func TestInspectCommand_SelfContained(t *testing.T) {
	tmpDir := t.TempDir()

	buf := captureOutput(t)
	err := runInspect(inspectCmd, []string{tmpDir})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "portable:  false")
}

func TestInspectCommand_MissingDir(t *testing.T) {
	captureOutput(t)
	err := runInspect(inspectCmd, []string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
