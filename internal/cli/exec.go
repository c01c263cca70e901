package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotnet/core-sdk/internal/logging"
	"github.com/dotnet/core-sdk/internal/runner"
	"github.com/dotnet/core-sdk/internal/runtimeconfig"
)

var execNative bool

var execCmd = &cobra.Command{
	Use:   "exec <output-dir> <executable-name>",
	Short: "Run a build output executable portable-aware",
	Long: `Resolves the executable in a build output directory and runs it the
way the harness would: portable outputs through the tool's exec entry
point, self-contained ones directly. Captured stdout and stderr are
relayed; a non-zero exit code is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execNative, "native", false, "use the native subdirectory of the output dir")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	outputDir := args[0]
	if execNative {
		outputDir = filepath.Join(outputDir, "native")
	}
	executablePath := filepath.Join(outputDir, args[1])

	portable, err := runtimeconfig.IsPortable(executablePath)
	if err != nil {
		return err
	}

	// The host binary is only needed when rerouting a portable output.
	var dotnetPath string
	if portable {
		if dotnetPath, err = resolveDotnetPath(settings); err != nil {
			return err
		}
	}

	inv := runner.ExecInvocation(dotnetPath, executablePath, portable)
	inv.Env = forwardedEnv(settings)

	logging.Debug("running executable", "path", executablePath, "portable", portable)

	result := runner.RunWithTimeout(inv, settings.CommandTimeout)
	if result.Err != nil {
		return fmt.Errorf("failed to run %s: %w", executablePath, result.Err)
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)

	if result.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", executablePath, result.ExitCode)
	}
	return nil
}
