package parser

import (
	"unicode"

	"github.com/gitql-labs/gitql/pkg/token"
)

// Tokenize converts query text into tokens in source order. The scan is a
// single left-to-right pass over the character (rune) sequence; offsets in
// token locations are character offsets into the original text.
// Tokenization is all-or-nothing: the first unrecognized character aborts
// the scan with a diagnostic and no partial token sequence is returned.
func Tokenize(query string) ([]token.Token, *Diagnostic) {
	var tokens []token.Token

	chars := []rune(query)
	length := len(chars)
	pos := 0

	for pos < length {
		start := pos
		ch := chars[pos]

		switch {
		case unicode.IsLetter(ch):
			for pos < length && unicode.IsLetter(chars[pos]) {
				pos++
			}
			literal := string(chars[start:pos])
			tokens = append(tokens, token.Token{
				Location: token.Location{Start: start, End: pos},
				Kind:     token.LookupSymbol(literal),
				Literal:  literal,
			})

		case unicode.IsDigit(ch):
			for pos < length && unicode.IsDigit(chars[pos]) {
				pos++
			}
			tokens = append(tokens, token.Token{
				Location: token.Location{Start: start, End: pos},
				Kind:     token.NUMBER,
				Literal:  string(chars[start:pos]),
			})

		case ch == '"':
			pos++
			for pos < length && chars[pos] != '"' {
				pos++
			}
			if pos >= length {
				return nil, errorf(token.Location{Start: start, End: pos}, "unterminated string literal")
			}
			pos++ // closing quote
			// The literal excludes the quotes; the span includes them.
			tokens = append(tokens, token.Token{
				Location: token.Location{Start: start, End: pos},
				Kind:     token.STRING,
				Literal:  string(chars[start+1 : pos-1]),
			})

		case ch == '*':
			tokens = append(tokens, punct(start, token.STAR, "*"))
			pos++

		case ch == '|':
			tokens = append(tokens, punct(start, token.OR, "|"))
			pos++

		case ch == '&':
			tokens = append(tokens, punct(start, token.AND, "&"))
			pos++

		case ch == ',':
			tokens = append(tokens, punct(start, token.COMMA, ","))
			pos++

		case ch == '=':
			tokens = append(tokens, punct(start, token.EQ, "="))
			pos++

		case ch == ' ' || ch == '\n' || ch == '\t':
			pos++

		default:
			return nil, errorf(token.Location{Start: start, End: pos}, "unexpected character %q", ch)
		}
	}

	return tokens, nil
}

// punct builds a single-character punctuation token. Its span is the
// degenerate {start, start}, not {start, start+1}; downstream consumers
// rely on that convention.
func punct(start int, kind token.Kind, literal string) token.Token {
	return token.Token{
		Location: token.Location{Start: start, End: start},
		Kind:     kind,
		Literal:  literal,
	}
}
