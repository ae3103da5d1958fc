package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/gitql-labs/gitql/internal/cli/config"
	"github.com/gitql-labs/gitql/internal/engine"
	"github.com/gitql-labs/gitql/internal/source"
)

func runQueryREPL(cmd *cobra.Command, cfg *config.Config, format string) error {
	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	eng := newEngine(cmd, src)

	historyFile := filepath.Join(os.TempDir(), "gitql_history")
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".gitql_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "gitql> ",
		HistoryFile:     historyFile,
		AutoComplete:    newQueryCompleter(src),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitql REPL (source: %s)\n", cfg.Source.Type)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, src, eng, line, format); quit {
				break
			}
			continue
		}

		if err := executeAndRender(cmd, eng, line, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// handleDotCommand executes a REPL dot-command. It reports whether the
// REPL should exit.
func handleDotCommand(cmd *cobra.Command, src source.Source, eng *engine.Engine, line, format string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".tables":
		for _, name := range src.Tables() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}

	case ".fields":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .fields <table>")
			return false
		}
		printFields(cmd, src, parts[1])

	case ".functions":
		for _, name := range eng.Transforms().Names() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printFields(cmd *cobra.Command, src source.Source, table string) {
	lister, ok := src.(fieldLister)
	if !ok {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error: the source cannot list fields")
		return
	}
	fields, ok := lister.FieldsOf(table)
	if !ok {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown table %q\n", table)
		return
	}
	for _, field := range fields {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), field)
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .tables          List the source's tables
  .fields <table>  List the fields of a table
  .functions       List available transformation functions
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - Queries run as soon as you press enter
  - Use arrow keys to navigate history
  - Tab completion works for keywords and table names
`
	_, _ = fmt.Fprintln(w, help)
}

// newQueryCompleter creates a readline completer over query keywords,
// table names, and dot-commands.
func newQueryCompleter(src source.Source) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	tables := src.Tables()
	tableItems := make([]readline.PrefixCompleterInterface, 0, len(tables))
	for _, name := range tables {
		tableItems = append(tableItems, readline.PcItem(name))
	}

	items = append(items,
		readline.PcItem("select", readline.PcItem("*", readline.PcItem("from", tableItems...))),
		readline.PcItem("from", tableItems...),
		readline.PcItem("where"),
		readline.PcItem("order", readline.PcItem("by")),
		readline.PcItem("limit"),
		readline.PcItem("offset"),
	)

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".fields", tableItems...),
		readline.PcItem(".functions"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
