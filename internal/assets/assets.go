// Package assets locates the shared, read-only resources every test needs:
// the repository root, the fixture assets under it, the dotnet binary under
// test and the designated working folder.
package assets

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/dotnet/core-sdk/internal/config"
)

// Assets bundles the shared test resources. Immutable after construction.
type Assets struct {
	// RepoRoot is the discovered repository root.
	RepoRoot string

	// AssetsRoot holds the fixture assets, RepoRoot plus a fixed subpath.
	AssetsRoot string

	// DotnetPath is the dotnet binary under test.
	DotnetPath string

	// WorkFolder is the directory tests execute in.
	WorkFolder string

	// Settings is the resolved configuration the assets were built from:
	// the repo root's .sdktest/config.yaml merged with the environment
	// toggles, read once at discovery.
	Settings *config.Settings
}

// load initializes the process-wide instance exactly once, even under
// concurrent first access from parallel tests.
var load = sync.OnceValues(Discover)

// Get returns the process-wide shared assets, discovering them on first
// call. The instance lives for the process duration.
func Get() (*Assets, error) {
	return load()
}

// Discover resolves the shared assets from the current working directory:
// the repository root is found first, then settings are loaded from its
// config file and the environment toggles.
func Discover() (*Assets, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	root := FindRepoRoot(cwd)
	if root == "" {
		return nil, fmt.Errorf("no repository root found above %s", cwd)
	}

	settings, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return fromRoot(root, settings)
}

// DiscoverFrom resolves the shared assets starting the repository root walk
// at startDir with explicit settings, bypassing the config file. Tests of
// the discovery itself use this to stay hermetic.
func DiscoverFrom(startDir string, settings *config.Settings) (*Assets, error) {
	root := FindRepoRoot(startDir)
	if root == "" {
		return nil, fmt.Errorf("no repository root found above %s", startDir)
	}
	return fromRoot(root, settings)
}

func fromRoot(root string, settings *config.Settings) (*Assets, error) {
	dotnetPath, err := resolveDotnet(root, settings)
	if err != nil {
		return nil, err
	}

	workFolder := filepath.Join(root, filepath.FromSlash(settings.WorkFolder))
	if err := os.MkdirAll(workFolder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create work folder: %w", err)
	}

	return &Assets{
		RepoRoot:   root,
		AssetsRoot: filepath.Join(root, filepath.FromSlash(settings.AssetsSubdir)),
		DotnetPath: dotnetPath,
		WorkFolder: workFolder,
		Settings:   settings,
	}, nil
}

// FindRepoRoot walks up from startDir looking for a repository marker: a
// .sdktest directory, a global.json, or a .git directory. Returns "" when
// the walk reaches the filesystem root without a hit.
func FindRepoRoot(startDir string) string {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, ".sdktest")); err == nil && info.IsDir() {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, "global.json")); err == nil {
			return dir
		}
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// resolveDotnet picks the dotnet binary under test: the explicit settings
// value wins, then a repo-local .dotnet layout, then PATH.
func resolveDotnet(repoRoot string, settings *config.Settings) (string, error) {
	if settings.DotnetPath != "" {
		return settings.DotnetPath, nil
	}

	local := filepath.Join(repoRoot, ".dotnet", "dotnet")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	path, err := exec.LookPath("dotnet")
	if err != nil {
		return "", fmt.Errorf("dotnet binary not found: set %s or install dotnet on PATH", config.EnvDotnetUnderTest)
	}
	return path, nil
}
