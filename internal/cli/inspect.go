package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotnet/core-sdk/internal/runtimeconfig"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <output-dir>",
	Short: "Report the framework and portability of a build output",
	Long: `Reads the runtime configuration artifact in a build output directory
and reports the declared target framework and whether the executable needs
a host to run. A directory without an artifact is self-contained.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := args[0]

	path, err := runtimeconfig.Find(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, "portable:  false (no runtime configuration artifact)")
		return nil
	}

	cfg, err := runtimeconfig.Parse(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "artifact:  %s\n", path)
	fmt.Fprintf(out, "framework: %s\n", cfg.Framework)
	fmt.Fprintf(out, "portable:  %t\n", cfg.Portable)
	return nil
}
