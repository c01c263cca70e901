package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const consoleProject = `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net6.0</TargetFramework>
    <ImplicitUsings>enable</ImplicitUsings>
  </PropertyGroup>

</Project>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language string
		want     string
	}{
		{"C#", ".csproj"},
		{"F#", ".fsproj"},
		{"VB", ".vbproj"},
		// Unknown and empty languages fall back to C#.
		{"", ".csproj"},
		{"Cobol", ".csproj"},
		{"c#", ".csproj"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionFor(tt.language), "language %q", tt.language)
	}
}

func TestFind_ExactlyOne(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "console.csproj", consoleProject)
	writeFile(t, tmpDir, "Program.cs", "// entry point")

	path, err := Find(tmpDir, ExtCSharp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "console.csproj"), path)
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "Program.cs", "// entry point")

	_, err := Find(tmpDir, ExtCSharp)
	require.Error(t, err)

	var merr *MatchError
	require.ErrorAs(t, err, &merr)
	assert.Empty(t, merr.Matches)
}

func TestFind_MultipleMatches(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "one.csproj", consoleProject)
	writeFile(t, tmpDir, "two.csproj", consoleProject)

	_, err := Find(tmpDir, ExtCSharp)
	require.Error(t, err)

	var merr *MatchError
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Matches, 2)
}

func TestFind_IgnoresSubdirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "app.csproj", consoleProject)
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested.csproj"), 0o755))

	path, err := Find(tmpDir, ExtCSharp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "app.csproj"), path)
}

func TestTargetFramework(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "console.csproj", consoleProject)

	tf, err := TargetFramework(path)
	require.NoError(t, err)
	assert.Equal(t, "net6.0", tf)
}

func TestTargetFramework_SecondPropertyGroup(t *testing.T) {
	t.Parallel()

	content := `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
  </PropertyGroup>
  <PropertyGroup>
    <TargetFramework>net7.0</TargetFramework>
  </PropertyGroup>
</Project>
`
	path := writeFile(t, t.TempDir(), "app.csproj", content)

	tf, err := TargetFramework(path)
	require.NoError(t, err)
	assert.Equal(t, "net7.0", tf)
}

func TestTargetFramework_Missing(t *testing.T) {
	t.Parallel()

	content := `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
  </PropertyGroup>
</Project>
`
	path := writeFile(t, t.TempDir(), "app.csproj", content)

	tf, err := TargetFramework(path)
	require.NoError(t, err)
	assert.Empty(t, tf)
}

func TestTargetFramework_MalformedXML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.csproj", "<Project><PropertyGroup>")

	_, err := TargetFramework(path)
	assert.Error(t, err)
}
