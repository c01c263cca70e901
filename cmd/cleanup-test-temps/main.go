// Command cleanup-test-temps deletes orphaned test temp directories.
//
// Test runs with DOTNET_TEST_PRESERVE_TEMP set leave "sdk-test-*"
// directories in the system temp location. This utility lists and deletes
// those older than a configurable threshold.
//
// Usage:
//
//	cleanup-test-temps [flags]
//
// Examples:
//
//	# List orphan directories (dry run)
//	cleanup-test-temps
//
//	# Delete directories older than 1 hour
//	cleanup-test-temps --force
//
//	# Delete directories older than 30 minutes
//	cleanup-test-temps --force --max-age 30m
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	testTempPrefix = "sdk-test-"
	defaultMaxAge  = 1 * time.Hour
)

func main() {
	var (
		force  bool
		maxAge time.Duration
	)

	flag.BoolVar(&force, "force", false, "Actually delete directories (default is dry run)")
	flag.DurationVar(&maxAge, "max-age", defaultMaxAge, "Delete directories older than this duration")
	flag.Parse()

	if err := run(force, maxAge); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(force bool, maxAge time.Duration) error {
	base := os.TempDir()
	entries, err := os.ReadDir(base)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", base, err)
	}

	cutoff := time.Now().Add(-maxAge)
	var matched, deleted int

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), testTempPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to stat %s: %v\n", entry.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		matched++
		path := filepath.Join(base, entry.Name())
		if !force {
			fmt.Printf("would delete %s (age %s)\n", path, time.Since(info.ModTime()).Round(time.Minute))
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to delete %s: %v\n", path, err)
			continue
		}
		deleted++
		fmt.Printf("deleted %s\n", path)
	}

	if !force && matched > 0 {
		fmt.Printf("%d directories matched; re-run with --force to delete\n", matched)
	}
	if force {
		fmt.Printf("deleted %d of %d matched directories\n", deleted, matched)
	}
	return nil
}
