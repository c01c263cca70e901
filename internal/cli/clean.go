package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotnet/core-sdk/internal/logging"
)

// tempPrefix matches the directories the harness creates. Kept in sync
// with the harness package's TempPrefix.
const tempPrefix = "sdk-test-"

var cleanForce bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove stray preserved test temp directories",
	Long: `Finds sdk-test-* directories left in the system temp location by runs
with DOTNET_TEST_PRESERVE_TEMP set. On a terminal the deletion is
confirmed interactively; otherwise nothing is deleted unless --force is
given.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "delete without confirmation")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	strays, err := findStrayTemps(os.TempDir())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(strays) == 0 {
		fmt.Fprintln(out, "no preserved temp directories found")
		return nil
	}

	for _, dir := range strays {
		fmt.Fprintln(out, dir)
	}

	if !cleanForce {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(out, "dry run: %d directories found (use --force to delete)\n", len(strays))
			return nil
		}
		fmt.Fprintf(out, "delete %d directories? [y/N] ", len(strays))
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Fprintln(out, "aborted")
			return nil
		}
	}

	for _, dir := range strays {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		logging.Debug("removed temp directory", "dir", dir)
	}
	fmt.Fprintf(out, "removed %d directories\n", len(strays))
	return nil
}

// findStrayTemps lists harness temp directories under base.
func findStrayTemps(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp location: %w", err)
	}

	var strays []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), tempPrefix) {
			strays = append(strays, filepath.Join(base, entry.Name()))
		}
	}
	return strays, nil
}
