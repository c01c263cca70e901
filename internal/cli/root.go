package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dotnet/core-sdk/internal/assets"
	"github.com/dotnet/core-sdk/internal/config"
	"github.com/dotnet/core-sdk/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sdkharness",
	Short: "Utilities for exercising the dotnet binary under test",
	Long: `sdkharness exposes the test harness internals for manual use:
inspecting build outputs, scaffolding template projects, running
executables portable-aware, and sweeping stray preserved temp directories.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sdkharness version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings resolves the CLI's settings: when a repository root is
// found above the working directory its .sdktest/config.yaml applies,
// merged with the environment toggles; outside a repository only the
// defaults and toggles do.
func loadSettings() (*config.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	root := assets.FindRepoRoot(cwd)
	if root == "" {
		return config.FromEnv(), nil
	}
	return config.Load(root)
}

// resolveDotnetPath picks the dotnet binary for CLI invocations: the
// settings value wins, then PATH.
func resolveDotnetPath(settings *config.Settings) (string, error) {
	if settings.DotnetPath != "" {
		return settings.DotnetPath, nil
	}
	path, err := exec.LookPath("dotnet")
	if err != nil {
		return "", fmt.Errorf("dotnet binary not found: set %s or install dotnet on PATH", config.EnvDotnetUnderTest)
	}
	return path, nil
}

// forwardedEnv carries the display-language override into spawned
// processes.
func forwardedEnv(settings *config.Settings) map[string]string {
	if settings.UILanguage == "" {
		return nil
	}
	return map[string]string{config.EnvUILanguage: settings.UILanguage}
}
