package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotnet/core-sdk/internal/config"
)

// fakeDotnet installs a shell script standing in for the dotnet binary and
// points the harness at it for the duration of the test.
func fakeDotnet(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dotnet")
	content := fmt.Sprintf("#!/bin/sh\n%s\n", body)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	t.Setenv(config.EnvDotnetUnderTest, path)
	return path
}

const scaffoldedProject = `cat > console.csproj <<'EOF'
<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net6.0</TargetFramework>
  </PropertyGroup>
</Project>
EOF`

func TestScaffoldCommand(t *testing.T) {
	fakeDotnet(t, scaffoldedProject)

	dir := filepath.Join(t.TempDir(), "proj")
	scaffoldOutput = dir
	scaffoldLanguage = ""
	scaffoldFramework = ""
	defer func() { scaffoldOutput = "." }()

	buf := captureOutput(t)
	scaffoldCmd.SetContext(context.Background())
	err := runScaffold(scaffoldCmd, []string{"console"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), filepath.Join(dir, "console.csproj"))
}

func TestScaffoldCommand_FrameworkMismatch(t *testing.T) {
	fakeDotnet(t, scaffoldedProject)

	scaffoldOutput = filepath.Join(t.TempDir(), "proj")
	scaffoldLanguage = ""
	scaffoldFramework = "net8.0"
	defer func() {
		scaffoldOutput = "."
		scaffoldFramework = ""
	}()

	captureOutput(t)
	scaffoldCmd.SetContext(context.Background())
	err := runScaffold(scaffoldCmd, []string{"console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "net8.0")
}

func TestScaffoldCommand_TemplateFailure(t *testing.T) {
	fakeDotnet(t, `echo "No templates found" >&2; exit 103`)

	scaffoldOutput = filepath.Join(t.TempDir(), "proj")
	scaffoldLanguage = ""
	scaffoldFramework = ""
	defer func() { scaffoldOutput = "." }()

	captureOutput(t)
	scaffoldCmd.SetContext(context.Background())
	err := runScaffold(scaffoldCmd, []string{"nope"})
	assert.Error(t, err)
}
