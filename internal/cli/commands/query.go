package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitql-labs/gitql/internal/cli/config"
	"github.com/gitql-labs/gitql/pkg/parser"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Format string
	Input  string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [QUERY]",
		Short: "Run a query against the configured source",
		Long: `Run a gitql query against the configured record source.

Queries select from the source's tables and shape the result with where,
order by, limit, and offset clauses, executed in the order written.

When invoked without arguments on a terminal, enters interactive REPL mode.`,
		Example: `  # Query commits directly
  gitql query 'select title, name from commits where name = "ada"'

  # Newest five commits (RFC 3339 timestamps sort chronologically)
  gitql query "select hash, time from commits order by time offset 95"

  # Read the query from a file
  gitql query --input report.gitql

  # Output as JSON
  gitql query "select name from branches" --format json

  # Interactive mode
  gitql query`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md (overrides --output)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read the query from a file")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cfg := config.GetCurrentConfig()
	format := opts.Format
	if format == "" {
		format = cfg.Output
	}

	var query string
	switch {
	case len(args) > 0:
		query = args[0]
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		query = string(content)
	case !isTerminal(os.Stdin):
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		query = string(content)
	default:
		return runQueryREPL(cmd, cfg, format)
	}

	query = strings.TrimSpace(query)

	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	return executeAndRender(cmd, newEngine(cmd, src), query, format)
}

// executeAndRender runs one query and writes the result. Parse diagnostics
// render with the offending span marked and still fail the command.
func executeAndRender(cmd *cobra.Command, eng queryRunner, query, format string) error {
	result, err := eng.Run(cmd.Context(), query)
	if err != nil {
		var diag *parser.Diagnostic
		if errors.As(err, &diag) {
			renderDiagnostic(cmd.ErrOrStderr(), query, diag)
			return fmt.Errorf("query failed")
		}
		return err
	}
	return renderRecords(cmd.OutOrStdout(), result.Records, format)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
