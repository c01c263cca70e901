package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotnet/core-sdk/internal/logging"
	"github.com/dotnet/core-sdk/internal/scaffold"
)

var (
	scaffoldOutput    string
	scaffoldLanguage  string
	scaffoldFramework string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <template>",
	Short: "Generate a project from a template",
	Long: `Runs the tool under test's "new" command with an isolated template
cache and without package restore, then verifies that exactly one project
file was generated. With --framework, the generated project's declared
TargetFramework must match.`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, "output", "o", ".", "target directory")
	scaffoldCmd.Flags().StringVarP(&scaffoldLanguage, "language", "l", "", "project language (C#, F#, VB)")
	scaffoldCmd.Flags().StringVarP(&scaffoldFramework, "framework", "f", "", "expected TargetFramework value")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dotnetPath, err := resolveDotnetPath(settings)
	if err != nil {
		return err
	}

	logging.Debug("scaffolding template",
		"template", args[0], "dir", scaffoldOutput, "dotnet", dotnetPath)

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.CommandTimeout)
	defer cancel()

	projectFile, err := scaffold.Create(ctx, dotnetPath, settings, scaffold.Options{
		Template:  args[0],
		Dir:       scaffoldOutput,
		Language:  scaffoldLanguage,
		Framework: scaffoldFramework,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), projectFile)
	return nil
}
