package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitql-labs/gitql/pkg/object"
	"github.com/gitql-labs/gitql/pkg/parser"
)

func sampleRecords() []object.Record {
	return []object.Record{
		{"name": "ada", "title": "add parser"},
		{"name": "grace", "title": "initial commit"},
	}
}

func TestRenderTable(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, renderRecords(&buf, sampleRecords(), "table"))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "initial commit")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, renderRecords(&buf, nil, "table"))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, renderRecords(&buf, sampleRecords(), "json"))

	assert.Contains(t, buf.String(), `"name": "ada"`)
	assert.Contains(t, buf.String(), `"title": "initial commit"`)
}

func TestRenderCSV(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, renderRecords(&buf, []object.Record{
		{"name": "ada", "title": `say "hi", twice`},
	}, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,title", lines[0])
	assert.Equal(t, `ada,"say ""hi"", twice"`, lines[1])
}

func TestRenderMarkdown(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, renderRecords(&buf, sampleRecords(), "md"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| name | title |", lines[0])
	assert.Equal(t, "| --- | --- |", lines[1])
	assert.Equal(t, "| ada | add parser |", lines[2])
}

func TestColumnsOfUnion(t *testing.T) {
	cols := columnsOf([]object.Record{
		{"b": "1"},
		{"a": "2", "c": "3"},
	})
	assert.Equal(t, []string{"a", "b", "c"}, cols)
}

func TestRenderDiagnosticMarksSpan(t *testing.T) {
	query := `select * from commits where name = #`
	tokens, diag := parser.Tokenize(query)
	require.Nil(t, tokens)
	require.NotNil(t, diag)

	var buf strings.Builder
	renderDiagnostic(&buf, query, diag)

	out := buf.String()
	assert.Contains(t, out, diag.Message)
	assert.Contains(t, out, query)

	// The caret line must point at the offending column.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	caretLine := lines[2]
	assert.Equal(t, strings.Index(query, "#")+2, strings.Index(caretLine, "^"), "caret column (two leading pad spaces)")
}

func TestRenderDiagnosticDegenerateSpan(t *testing.T) {
	diag := &parser.Diagnostic{Message: "boom"}

	var buf strings.Builder
	renderDiagnostic(&buf, "select", diag)
	assert.Contains(t, buf.String(), "^")
}
