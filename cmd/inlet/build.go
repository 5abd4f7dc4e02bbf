package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the crate rooted at --path and its dependencies",
	Long:  "Build runs the full pipeline (lex, parse, function-collection, identifier-resolution, origin-analysis) over the crate rooted at --path and its transitive dependencies, then prints every diagnostic raised.",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("path", ".", "root directory of the crate to build")
	buildCmd.Flags().String("format", "pretty", "diagnostic output format (pretty|json)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := driver.Build(ctx, path, driver.Options{MaxDiagnostics: maxDiagnostics, Jobs: jobs})
	if err != nil {
		return failWithCode(2, fmt.Errorf("loading crate graph: %w", err))
	}

	useColor, err := wantColor(cmd, os.Stderr.Fd())
	if err != nil {
		return err
	}

	hadDiagnostics := false
	for _, crate := range res.Crates {
		if crate.Bag == nil || crate.Bag.Len() == 0 {
			continue
		}
		hadDiagnostics = true
		crate.Bag.Sort()
		switch format {
		case "pretty":
			diag.Pretty(os.Stderr, crate.Bag, res.Files, diag.PrettyOpts{Color: useColor})
			fmt.Fprintln(os.Stderr)
		case "json":
			if err := diag.JSON(os.Stdout, crate.Bag, res.Files); err != nil {
				return failWithCode(2, err)
			}
		default:
			return fmt.Errorf("unknown --format value %q (want pretty|json)", format)
		}
	}

	if res.HasErrors() {
		return failWithCode(1, fmt.Errorf("build failed with errors"))
	}
	if hadDiagnostics {
		// Warnings/info only: exit 0 when nothing at SevError-or-above
		// was reported.
		return nil
	}
	return nil
}
