// Package project locates and probes generated project files.
package project

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions of project files by scaffolding language.
const (
	ExtCSharp      = ".csproj"
	ExtFSharp      = ".fsproj"
	ExtVisualBasic = ".vbproj"
)

// ExtensionFor maps a scaffolding language name to its project file
// extension. Unrecognized languages fall back to the C# extension; the
// scaffolding command rejects unknown languages before the fallback can
// pick a wrong file, but callers passing free-form strings should not rely
// on it.
func ExtensionFor(language string) string {
	switch language {
	case "F#":
		return ExtFSharp
	case "VB":
		return ExtVisualBasic
	case "C#":
		return ExtCSharp
	default:
		return ExtCSharp
	}
}

// MatchError reports a violated exactly-one project file contract.
type MatchError struct {
	Dir       string
	Extension string
	Matches   []string
}

func (e *MatchError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("no %s file found in %s", e.Extension, e.Dir)
	}
	return fmt.Sprintf("expected exactly one %s file in %s, found %d: %s",
		e.Extension, e.Dir, len(e.Matches), strings.Join(e.Matches, ", "))
}

// Find returns the single project file with the given extension in dir.
// Zero or multiple matches violate the exactly-one contract and return a
// *MatchError; a scaffold that produced two project files must fail, never
// silently pick one.
func Find(dir, extension string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read project directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == extension {
			matches = append(matches, entry.Name())
		}
	}

	if len(matches) != 1 {
		return "", &MatchError{Dir: dir, Extension: extension, Matches: matches}
	}
	return filepath.Join(dir, matches[0]), nil
}

// propertyGroup mirrors the subset of the project file schema we probe.
type propertyGroup struct {
	TargetFramework string `xml:"TargetFramework"`
}

type projectFile struct {
	PropertyGroups []propertyGroup `xml:"PropertyGroup"`
}

// TargetFramework reads the declared TargetFramework value from a project
// file. Returns "" when no PropertyGroup declares one.
func TargetFramework(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read project file: %w", err)
	}

	var proj projectFile
	if err := xml.Unmarshal(data, &proj); err != nil {
		return "", fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	for _, group := range proj.PropertyGroups {
		if group.TargetFramework != "" {
			return group.TargetFramework, nil
		}
	}
	return "", nil
}
