// Package runtimeconfig reads the generated *.runtimeconfig.json artifact
// that describes a build output's target framework and hosting requirements.
package runtimeconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Suffix identifies runtime configuration artifacts in a build output
// directory.
const Suffix = "runtimeconfig.json"

// framework is the shared-framework reference inside runtimeOptions. Its
// presence means the executable needs an external host to run.
type framework struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type runtimeOptions struct {
	TFM       string     `json:"tfm"`
	Framework *framework `json:"framework"`
}

type document struct {
	RuntimeOptions runtimeOptions `json:"runtimeOptions"`
}

// RuntimeConfig is the parsed subset of a runtime configuration artifact.
type RuntimeConfig struct {
	// Framework is the declared target framework moniker, e.g. "net6.0".
	Framework string

	// Portable reports whether the output depends on a shared framework
	// and therefore must be launched through a host, as opposed to a
	// self-contained output that runs directly.
	Portable bool
}

// Parse reads and parses a runtime configuration file.
func Parse(path string) (*RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read runtime config: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse runtime config %s: %w", path, err)
	}

	return &RuntimeConfig{
		Framework: doc.RuntimeOptions.TFM,
		Portable:  doc.RuntimeOptions.Framework != nil,
	}, nil
}

// Find locates the runtime configuration artifact in dir. It returns the
// path of the first file whose name ends in Suffix, or "" when the
// directory holds none.
func Find(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), Suffix) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", nil
}

// IsPortable reports whether the executable at the given path is a portable
// build output. A directory without a runtime configuration artifact means
// not portable; otherwise the artifact's portability flag decides.
func IsPortable(executablePath string) (bool, error) {
	configPath, err := Find(filepath.Dir(executablePath))
	if err != nil {
		return false, err
	}
	if configPath == "" {
		return false, nil
	}

	cfg, err := Parse(configPath)
	if err != nil {
		return false, err
	}
	return cfg.Portable, nil
}
