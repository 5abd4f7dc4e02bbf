// Package main implements the inlet CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "inlet",
	Short:         "Inlet compiler front end",
	Long:          `Inlet lexes, parses, and checks the origin tags of Inlet source crates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitCodeError carries a specific process exit code out of a RunE:
// 1 for a build that ran to completion but reported an error-severity
// diagnostic, 2 for an I/O or manifest failure that kept the pipeline
// from running at all. Cobra's default "return non-nil to exit 1" does
// not distinguish the two, so main unwraps this before choosing the
// exit status.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func failWithCode(code int, err error) error {
	return &exitCodeError{code: code, err: err}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum diagnostics collected per crate")
	rootCmd.PersistentFlags().Int("jobs", 0, "worker count for independent-crate parallelism (0=auto)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			fmt.Fprintln(os.Stderr, "inlet:", ec.Error())
			os.Exit(ec.code)
		}
		fmt.Fprintln(os.Stderr, "inlet:", err)
		os.Exit(1)
	}
}

// wantColor resolves the --color flag against whether fd is a terminal.
func wantColor(cmd *cobra.Command, fd uintptr) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return term.IsTerminal(int(fd)), nil
	default:
		return false, fmt.Errorf("unknown --color value %q (want auto|on|off)", colorFlag)
	}
}
