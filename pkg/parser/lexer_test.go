package parser_test

import (
	"strings"
	"testing"

	"github.com/gitql-labs/gitql/pkg/parser"
	"github.com/gitql-labs/gitql/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"select", token.SELECT},
		{"from", token.FROM},
		{"where", token.WHERE},
		{"limit", token.LIMIT},
		{"offset", token.OFFSET},
		{"order", token.ORDER},
		{"by", token.BY},
		// Keyword resolution is case-sensitive
		{"Select", token.SYMBOL},
		{"FROM", token.SYMBOL},
		{"commits", token.SYMBOL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, diag := parser.Tokenize(tt.input)
			require.Nil(t, diag)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0].Kind)
			assert.Equal(t, tt.input, tokens[0].Literal)
		})
	}
}

func TestTokenizeQuery(t *testing.T) {
	tokens, diag := parser.Tokenize("select name, email from commits where name = \"bob\" limit 10")
	require.Nil(t, diag)

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.SELECT, token.SYMBOL, token.COMMA, token.SYMBOL,
		token.FROM, token.SYMBOL,
		token.WHERE, token.SYMBOL, token.EQ, token.STRING,
		token.LIMIT, token.NUMBER,
	}, kinds)
}

func TestTokenizeSpans(t *testing.T) {
	input := `select * from commits`
	tokens, diag := parser.Tokenize(input)
	require.Nil(t, diag)
	require.Len(t, tokens, 4)

	// Multi-character tokens: re-slicing [start, end) reproduces the literal.
	for _, tok := range tokens {
		if tok.Kind == token.STAR {
			continue
		}
		assert.Equal(t, tok.Literal, input[tok.Location.Start:tok.Location.End])
	}

	// Single-character punctuation carries the degenerate {start, start} span.
	star := tokens[1]
	assert.Equal(t, token.STAR, star.Kind)
	assert.Equal(t, star.Location.Start, star.Location.End)
	assert.Equal(t, 7, star.Location.Start)
}

func TestTokenizePunctuationSpans(t *testing.T) {
	input := "a,b=c|d&e"
	tokens, diag := parser.Tokenize(input)
	require.Nil(t, diag)

	for _, tok := range tokens {
		switch tok.Kind {
		case token.COMMA, token.EQ, token.OR, token.AND:
			assert.Equal(t, tok.Location.Start, tok.Location.End,
				"punctuation %q should have a degenerate span", tok.Literal)
			assert.Equal(t, tok.Literal, string(input[tok.Location.Start]))
		}
	}
}

func TestTokenizeString(t *testing.T) {
	input := `where title = "hello world"`
	tokens, diag := parser.Tokenize(input)
	require.Nil(t, diag)
	require.Len(t, tokens, 4)

	str := tokens[3]
	assert.Equal(t, token.STRING, str.Kind)
	// Literal excludes the quotes, the span includes them.
	assert.Equal(t, "hello world", str.Literal)
	assert.Equal(t, `"hello world"`, input[str.Location.Start:str.Location.End])
}

func TestTokenizeEmptyString(t *testing.T) {
	tokens, diag := parser.Tokenize(`""`)
	require.Nil(t, diag)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, "", tokens[0].Literal)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, diag := parser.Tokenize(`select * from commits where title = "oops`)
	require.NotNil(t, diag)
	assert.Contains(t, diag.Message, "unterminated string")
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	input := "select # 1"
	tokens, diag := parser.Tokenize(input)
	require.NotNil(t, diag)
	assert.Nil(t, tokens, "no partial token sequence on error")
	assert.Contains(t, diag.Message, "unexpected character")
	assert.Equal(t, strings.Index(input, "#"), diag.Location.Start)
}

func TestTokenizeNumberRun(t *testing.T) {
	tokens, diag := parser.Tokenize("limit 0123")
	require.Nil(t, diag)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.NUMBER, tokens[1].Kind)
	// Numbers stay textual at this stage, no parsing or validation.
	assert.Equal(t, "0123", tokens[1].Literal)
}

func TestTokenizeWhitespace(t *testing.T) {
	tokens, diag := parser.Tokenize(" \n\t select \t\n ")
	require.Nil(t, diag)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.SELECT, tokens[0].Kind)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, diag := parser.Tokenize("")
	require.Nil(t, diag)
	assert.Empty(t, tokens)
}

func TestTokenizeAdjacentRuns(t *testing.T) {
	// An alphabetic run ends where a digit begins: "abc123" is two tokens.
	tokens, diag := parser.Tokenize("abc123")
	require.Nil(t, diag)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.SYMBOL, tokens[0].Kind)
	assert.Equal(t, "abc", tokens[0].Literal)
	assert.Equal(t, token.NUMBER, tokens[1].Kind)
	assert.Equal(t, "123", tokens[1].Literal)
}
