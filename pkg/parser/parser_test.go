package parser_test

import (
	"testing"

	"github.com/gitql-labs/gitql/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectStar(t *testing.T) {
	stmts, diag := parser.Parse("select * from commits")
	require.Nil(t, diag)
	require.Len(t, stmts, 1)

	sel, ok := stmts[0].(*parser.SelectStatement)
	require.True(t, ok)
	assert.Equal(t, "commits", sel.TableName)
	assert.Empty(t, sel.Fields)
}

func TestParseSelectFields(t *testing.T) {
	stmts, diag := parser.Parse("select name, email from commits")
	require.Nil(t, diag)

	sel := stmts[0].(*parser.SelectStatement)
	assert.Equal(t, []string{"name", "email"}, sel.Fields)
	assert.Equal(t, "commits", sel.TableName)
}

func TestParseWhereEquality(t *testing.T) {
	stmts, diag := parser.Parse(`select * from commits where name = "bob"`)
	require.Nil(t, diag)
	require.Len(t, stmts, 2)

	where, ok := stmts[1].(*parser.WhereStatement)
	require.True(t, ok)

	cmp, ok := where.Condition.(*parser.ComparisonExpr)
	require.True(t, ok)
	assert.Equal(t, parser.Equal, cmp.Operator)
	assert.Equal(t, &parser.SymbolExpr{Name: "name"}, cmp.Left)
	assert.Equal(t, &parser.StringExpr{Value: "bob"}, cmp.Right)
}

func TestParseWherePrecedence(t *testing.T) {
	// `|` binds loosest: a=b & c=d | e=f parses as ((a=b & c=d) | e=f).
	stmts, diag := parser.Parse(`select * from t where a = b & c = d | e = f`)
	require.Nil(t, diag)

	where := stmts[1].(*parser.WhereStatement)
	or, ok := where.Condition.(*parser.LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, parser.Or, or.Operator)

	and, ok := or.Left.(*parser.LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, parser.And, and.Operator)
}

func TestParseClauseOrderPreserved(t *testing.T) {
	stmts, diag := parser.Parse("select * from commits limit 2 order by id")
	require.Nil(t, diag)
	require.Len(t, stmts, 3)

	// No implicit SQL-style reordering: limit stays ahead of order by.
	_, isLimit := stmts[1].(*parser.LimitStatement)
	_, isOrder := stmts[2].(*parser.OrderByStatement)
	assert.True(t, isLimit)
	assert.True(t, isOrder)
}

func TestParseLimitOffset(t *testing.T) {
	stmts, diag := parser.Parse("select * from commits offset 5 limit 10")
	require.Nil(t, diag)
	require.Len(t, stmts, 3)

	off := stmts[1].(*parser.OffsetStatement)
	lim := stmts[2].(*parser.LimitStatement)
	assert.Equal(t, 5, off.Count)
	assert.Equal(t, 10, lim.Count)
}

func TestParseOrderBy(t *testing.T) {
	stmts, diag := parser.Parse("select * from branches order by name")
	require.Nil(t, diag)

	order := stmts[1].(*parser.OrderByStatement)
	assert.Equal(t, "name", order.FieldName)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "", "empty query"},
		{"no select", "where a = b", "must start with `select`"},
		{"missing from", "select *", "expected `from`"},
		{"missing table", "select * from", "expected table name"},
		{"missing field list", "select from commits", "expected field name"},
		{"dangling comma", "select a, from commits", "expected field name"},
		{"order without by", "select * from t order name", "expected `by`"},
		{"order by missing field", "select * from t order by", "expected field name"},
		{"limit without number", "select * from t limit x", "expected number"},
		{"double select", "select * from t select", "single select"},
		{"where missing operand", "select * from t where a =", "expected a value"},
		{"trailing token", "select * from t ,", "unexpected token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diag := parser.Parse(tt.query)
			require.NotNil(t, diag)
			assert.Contains(t, diag.Message, tt.want)
		})
	}
}

func TestParseLexErrorPropagates(t *testing.T) {
	_, diag := parser.Parse("select ? from t")
	require.NotNil(t, diag)
	assert.Contains(t, diag.Message, "unexpected character")
}

func TestDiagnosticError(t *testing.T) {
	_, diag := parser.Parse("select # from t")
	require.NotNil(t, diag)
	assert.Contains(t, diag.Error(), "error(7:7)")
}
