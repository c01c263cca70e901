package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dotnet/core-sdk/internal/assets"
	"github.com/dotnet/core-sdk/internal/config"
	"github.com/dotnet/core-sdk/internal/runner"
	"github.com/dotnet/core-sdk/internal/runtimeconfig"
	"github.com/dotnet/core-sdk/internal/scaffold"
)

// TempPrefix names the per-test temp directories so stray preserved ones
// can be matched and swept later.
const TempPrefix = "sdk-test-"

// Harness drives the dotnet binary under test from one test instance. It
// owns a lazily created temp directory, removed at teardown unless the
// preserve toggle is set. Every external failure is a hard test failure;
// nothing is retried.
type Harness struct {
	t        *testing.T
	settings *config.Settings

	// dotnetPath is the resolved binary under test.
	dotnetPath string

	tempDir string
}

// New creates a Harness bound to t, using the process-wide shared assets
// and the settings resolved with them (the repo root's config file merged
// with the environment toggles, read once per process). Teardown runs
// automatically when the test finishes.
func New(t *testing.T) *Harness {
	t.Helper()

	a, err := assets.Get()
	require.NoError(t, err, "failed to resolve shared test assets")

	return NewWithSettings(t, a.Settings, a.DotnetPath)
}

// NewWithSettings creates a Harness with explicit settings and dotnet
// binary, bypassing the shared asset singleton. Tests of the harness itself
// use this to stay hermetic.
func NewWithSettings(t *testing.T, settings *config.Settings, dotnetPath string) *Harness {
	t.Helper()

	h := &Harness{
		t:          t,
		settings:   settings,
		dotnetPath: dotnetPath,
	}
	t.Cleanup(func() {
		require.NoError(t, h.Close())
	})
	return h
}

// Temp returns the test's scoped temporary directory, creating it on first
// access. Repeated calls return the same path.
func (h *Harness) Temp() string {
	h.t.Helper()

	if h.tempDir == "" {
		dir := filepath.Join(os.TempDir(), TempPrefix+uuid.NewString())
		require.NoError(h.t, os.MkdirAll(dir, 0o755), "failed to create temp directory")
		h.tempDir = dir
	}
	return h.tempDir
}

// Close releases the temp directory. Safe to call when Temp was never
// accessed, and safe to call more than once. When the preserve toggle is
// set the directory is kept and its path logged instead.
func (h *Harness) Close() error {
	if h.tempDir == "" {
		return nil
	}

	dir := h.tempDir
	h.tempDir = ""

	if h.settings.PreserveTemp {
		h.t.Logf("preserving temp directory %s", dir)
		return nil
	}
	return os.RemoveAll(dir)
}

// CreateTemplate scaffolds a project from a template into dir and returns
// the generated project file path. A failed scaffold, a missing or
// ambiguous project file, or a framework mismatch fails the test
// immediately. framework may be empty to skip the check.
func (h *Harness) CreateTemplate(template, dir, language, framework string) string {
	h.t.Helper()

	ctx, cancel := h.commandContext()
	defer cancel()

	projectFile, err := scaffold.Create(ctx, h.dotnetPath, h.settings, scaffold.Options{
		Template:  template,
		Dir:       dir,
		Language:  language,
		Framework: framework,
	})
	require.NoError(h.t, err, "failed to scaffold template %q", template)
	return projectFile
}

// RunExecutable resolves and invokes the executable in outputDir. Portable
// outputs are routed through the binary under test's exec entry point
// instead of being launched directly; the executable path is passed as a
// discrete argv element, so no quoting is involved. When expectedOutput is
// non-empty, captured stdout must equal it exactly. Stderr must be empty
// and the exit code zero. Returns the captured result for further
// inspection.
func (h *Harness) RunExecutable(outputDir, executableName, expectedOutput string) *runner.Result {
	h.t.Helper()

	executablePath := filepath.Join(outputDir, executableName)

	portable, err := runtimeconfig.IsPortable(executablePath)
	require.NoError(h.t, err, "failed to resolve executable %s", executablePath)

	inv := runner.ExecInvocation(h.dotnetPath, executablePath, portable)
	inv.Env = h.forwardedEnv()

	ctx, cancel := h.commandContext()
	defer cancel()

	result := runner.RunWithContext(ctx, inv)
	require.NoError(h.t, result.Err, "failed to run %s", executablePath)

	if expectedOutput != "" {
		require.Equal(h.t, expectedOutput, result.Stdout, "unexpected stdout from %s", executablePath)
	}
	require.Empty(h.t, result.Stderr, "unexpected stderr from %s", executablePath)
	require.Equal(h.t, 0, result.ExitCode, "unexpected exit code from %s", executablePath)

	return result
}

// RunOutputExecutable invokes an executable from a build output directory.
func (h *Harness) RunOutputExecutable(outputDir, executableName, expectedOutput string) *runner.Result {
	h.t.Helper()
	return h.RunExecutable(outputDir, executableName, expectedOutput)
}

// RunNativeOutputExecutable invokes a self-contained executable from the
// "native" subdirectory of a build output directory.
func (h *Harness) RunNativeOutputExecutable(outputDir, executableName, expectedOutput string) *runner.Result {
	h.t.Helper()
	return h.RunExecutable(filepath.Join(outputDir, "native"), executableName, expectedOutput)
}

// Dotnet invokes the binary under test directly with the given arguments,
// returning the captured result without asserting on it.
func (h *Harness) Dotnet(args ...string) *runner.Result {
	h.t.Helper()

	ctx, cancel := h.commandContext()
	defer cancel()

	return runner.RunWithContext(ctx, runner.Invocation{
		Path: h.dotnetPath,
		Args: args,
		Env:  h.forwardedEnv(),
	})
}

// forwardedEnv carries the display-language override into spawned
// processes.
func (h *Harness) forwardedEnv() map[string]string {
	if h.settings.UILanguage == "" {
		return nil
	}
	return map[string]string{config.EnvUILanguage: h.settings.UILanguage}
}
