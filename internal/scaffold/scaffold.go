// Package scaffold generates projects from named templates by driving the
// tool under test's "new" command.
package scaffold

import (
	"context"
	"fmt"
	"os"

	"github.com/dotnet/core-sdk/internal/config"
	"github.com/dotnet/core-sdk/internal/project"
	"github.com/dotnet/core-sdk/internal/runner"
)

// Options describes one template instantiation.
type Options struct {
	// Template is the template name passed to the "new" command.
	Template string

	// Dir is the target directory, created when absent.
	Dir string

	// Language selects the project language; empty uses the template's
	// default.
	Language string

	// Framework, when non-empty, is asserted against the generated
	// project file's declared TargetFramework.
	Framework string
}

// ExitError reports a "new" invocation that completed with a non-zero exit
// code. The captured output rides along for test diagnostics.
type ExitError struct {
	Template string
	Result   *runner.Result
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("dotnet new %s exited with code %d\nstdout: %s\nstderr: %s",
		e.Template, e.Result.ExitCode, e.Result.Stdout, e.Result.Stderr)
}

// FrameworkError reports a generated project declaring a different target
// framework than expected.
type FrameworkError struct {
	ProjectFile string
	Expected    string
	Actual      string
}

func (e *FrameworkError) Error() string {
	return fmt.Sprintf("%s declares TargetFramework %q, expected %q",
		e.ProjectFile, e.Actual, e.Expected)
}

// Create instantiates a template into opts.Dir and returns the path of the
// single generated project file. The "new" command runs with an isolated
// template cache and without package restore, so scaffolds neither touch
// the user's template hive nor the network. No step is retried; the first
// failure surfaces immediately.
func Create(ctx context.Context, dotnetPath string, settings *config.Settings, opts Options) (string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	args := []string{"new", opts.Template, "--debug:ephemeral-hive", "--no-restore"}
	if opts.Language != "" {
		args = append(args, "--language", opts.Language)
	}

	inv := runner.Invocation{
		Path: dotnetPath,
		Args: args,
		Dir:  opts.Dir,
		Env:  forwardedEnv(settings),
	}

	result := runner.RunWithContext(ctx, inv)
	if result.Err != nil {
		return "", fmt.Errorf("failed to run dotnet new %s: %w", opts.Template, result.Err)
	}
	if result.ExitCode != 0 {
		return "", &ExitError{Template: opts.Template, Result: result}
	}

	projectFile, err := project.Find(opts.Dir, project.ExtensionFor(opts.Language))
	if err != nil {
		return "", err
	}

	if opts.Framework != "" {
		actual, err := project.TargetFramework(projectFile)
		if err != nil {
			return "", err
		}
		if actual != opts.Framework {
			return "", &FrameworkError{
				ProjectFile: projectFile,
				Expected:    opts.Framework,
				Actual:      actual,
			}
		}
	}

	return projectFile, nil
}

// forwardedEnv carries the settings' display-language override into spawned
// processes.
func forwardedEnv(settings *config.Settings) map[string]string {
	if settings == nil || settings.UILanguage == "" {
		return nil
	}
	return map[string]string{config.EnvUILanguage: settings.UILanguage}
}
