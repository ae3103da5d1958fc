package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gitql-labs/gitql/pkg/object"
	"github.com/gitql-labs/gitql/pkg/parser"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	caretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// renderRecords writes records to w in the given format.
func renderRecords(w io.Writer, records []object.Record, format string) error {
	cols := columnsOf(records)

	switch format {
	case "json":
		return renderJSON(w, records)
	case "csv":
		return renderCSV(w, cols, records)
	case "md", "markdown":
		return renderMarkdown(w, cols, records)
	default:
		return renderTable(w, cols, records)
	}
}

// columnsOf collects the union of field names across records, sorted.
func columnsOf(records []object.Record) []string {
	seen := map[string]bool{}
	var cols []string
	for _, rec := range records {
		for field := range rec {
			if !seen[field] {
				seen[field] = true
				cols = append(cols, field)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func renderTable(w io.Writer, cols []string, records []object.Record) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, rec := range records {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = rec[col]
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(records))
	return nil
}

func renderJSON(w io.Writer, records []object.Record) error {
	out := make([]map[string]string, len(records))
	for i, rec := range records {
		out[i] = rec
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, cols []string, records []object.Record) error {
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))
	for _, rec := range records {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = escapeCSV(rec[col])
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, cols []string, records []object.Record) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, rec := range records {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = rec[col]
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// renderDiagnostic writes a query diagnostic with the offending span marked
// by carets. Spans are character offsets; single-character spans widen to
// one caret.
func renderDiagnostic(w io.Writer, query string, diag *parser.Diagnostic) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render("error:"), diag.Message)

	// Diagnostics only ever point into single-line queries.
	line := strings.ReplaceAll(query, "\n", " ")
	_, _ = fmt.Fprintf(w, "  %s\n", line)

	runes := []rune(line)
	start := diag.Location.Start
	if start > len(runes) {
		start = len(runes)
	}
	width := diag.Location.End - diag.Location.Start
	if width < 1 {
		width = 1
	}
	if start+width > len(runes)+1 {
		width = len(runes) + 1 - start
	}
	_, _ = fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", start), caretStyle.Render(strings.Repeat("^", width)))
}
