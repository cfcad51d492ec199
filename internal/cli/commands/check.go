package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/yamlroulette/internal/logger"
	"github.com/ccollicutt/yamlroulette/pkg/config"
	"github.com/ccollicutt/yamlroulette/pkg/output"
	"github.com/ccollicutt/yamlroulette/pkg/validator"
	"github.com/ccollicutt/yamlroulette/pkg/yamlparse"
)

// StdinPath reads the document from standard input.
const StdinPath = "-"

// ErrCheckFailed is returned when the input is missing or not valid YAML.
// The report has already been written when it is returned.
var ErrCheckFailed = errors.New("yaml check failed")

type checkFlags struct {
	parser   string
	output   string
	logLevel string
	quiet    bool
	multi    bool
}

// NewCheckCommand creates the command that validates a YAML file.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "yamlroulette <yaml-file>",
		Short: "Check whether a YAML file parses",
		Long: `yamlroulette loads a single YAML document and reports whether it parses.

On failure it prints the parser's problem, the line and column, and the
offending source line with a caret under the failing column.

Use "-" to read from standard input. A file named "version" or "help"
must be given with a path prefix, e.g. ./version.

Exit codes:
  0  the file is valid YAML
  1  wrong arguments, file not found, or parse failure`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.parser, "parser", config.DefaultParser,
		fmt.Sprintf("YAML parser to use %v", yamlparse.Names()))
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.DefaultOutput, "Output format (text, json)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", logger.DefaultLevel, "Diagnostic log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Single-line output")
	cmd.Flags().BoolVar(&flags.multi, "multi", false, "Accept streams with more than one document")

	return cmd
}

// resolveOptions layers defaults, environment, then explicitly set flags.
func resolveOptions(cmd *cobra.Command, flags *checkFlags) (*config.Options, error) {
	opts := config.DefaultOptions()
	opts.ApplyEnvironmentOverrides()

	if cmd.Flags().Changed("parser") {
		opts.Parser = flags.parser
	}
	if cmd.Flags().Changed("output") {
		opts.Output = flags.output
	}
	if cmd.Flags().Changed("log-level") {
		opts.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("multi") {
		opts.AllowMultiDocument = flags.multi
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	path := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := resolveOptions(cmd, flags)
	if err != nil {
		return err
	}

	log := logger.New(opts.LogLevel, cmd.ErrOrStderr())

	parser, err := yamlparse.New(opts.Parser, opts.ParserOptions())
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: flags.quiet})
	if err != nil {
		return err
	}

	v := validator.New(validator.WithParser(parser), validator.WithLogger(log))

	start := time.Now()
	var outcome *validator.Outcome
	if path == StdinPath {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("reading stdin: %w", readErr)
		}
		outcome, err = v.ValidateBytes(ctx, "<stdin>", data)
	} else {
		outcome, err = v.Validate(ctx, path)
	}
	if err != nil {
		return err
	}

	report := output.NewReport(outcome, parser.Name(), start)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.Valid() {
		return ErrCheckFailed
	}
	return nil
}
