package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCommand_Native(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "app"), []byte("#!/bin/sh\nprintf 'Hello World'\n"), 0o755))

	execNative = false
	buf := captureOutput(t)
	err := runExec(execCmd, []string{outputDir, "app"})
	require.NoError(t, err)

	assert.Equal(t, "Hello World", buf.String())
}

func TestExecCommand_Portable(t *testing.T) {
	// The fake dotnet proves the rerouting through the exec entry point.
	fakeDotnet(t, `printf '%s' "$1"`)

	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "app"), []byte("not runnable"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "app.runtimeconfig.json"), []byte(portableConfig), 0o644))

	execNative = false
	buf := captureOutput(t)
	err := runExec(execCmd, []string{outputDir, "app"})
	require.NoError(t, err)

	assert.Equal(t, "exec", buf.String())
}

func TestExecCommand_NativeSubdir(t *testing.T) {
	outputDir := t.TempDir()
	nativeDir := filepath.Join(outputDir, "native")
	require.NoError(t, os.MkdirAll(nativeDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(nativeDir, "app"), []byte("#!/bin/sh\nprintf 'native'\n"), 0o755))

	execNative = true
	defer func() { execNative = false }()

	buf := captureOutput(t)
	err := runExec(execCmd, []string{outputDir, "app"})
	require.NoError(t, err)

	assert.Equal(t, "native", buf.String())
}

func TestExecCommand_NonZeroExit(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "app"), []byte("#!/bin/sh\nexit 7\n"), 0o755))

	execNative = false
	captureOutput(t)
	err := runExec(execCmd, []string{outputDir, "app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 7")
}
