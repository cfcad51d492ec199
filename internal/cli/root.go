// Package cli provides the command-line interface for yamlroulette.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/yamlroulette/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the CLI with explicit arguments and streams.
// It returns 0 when the file is valid and 1 otherwise.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// The report has already been printed
		if errors.Is(err, commands.ErrCheckFailed) {
			return 1
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "Usage: yamlroulette <your-yaml-file>")
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewCheckCommand()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
