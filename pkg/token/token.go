// Package token defines the lexical tokens of the gitql query language
// and the source locations attached to them.
package token

// Location is a span of character offsets into the original query text.
// Multi-character tokens cover [Start, End); single-character punctuation
// tokens carry the degenerate span {Start, Start}. Diagnostics reuse the
// same convention.
type Location struct {
	Start int
	End   int
}

// Kind classifies a lexical token.
type Kind int

// Token kinds. The set is closed: the parser exhaustively switches on it.
const (
	// Keywords
	SELECT Kind = iota
	FROM
	WHERE
	LIMIT
	OFFSET
	ORDER
	BY

	// Operators and punctuation
	EQ    // =
	OR    // |
	AND   // &
	STAR  // *
	COMMA // ,

	// Literal classes
	SYMBOL
	NUMBER
	STRING
)

var kindNames = map[Kind]string{
	SELECT: "SELECT",
	FROM:   "FROM",
	WHERE:  "WHERE",
	LIMIT:  "LIMIT",
	OFFSET: "OFFSET",
	ORDER:  "ORDER",
	BY:     "BY",
	EQ:     "=",
	OR:     "|",
	AND:    "&",
	STAR:   "*",
	COMMA:  ",",
	SYMBOL: "SYMBOL",
	NUMBER: "NUMBER",
	STRING: "STRING",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one classified lexical unit. Tokens are produced once by the
// lexer and never mutated.
type Token struct {
	Location Location
	Kind     Kind
	Literal  string
}

// keywords maps reserved words to their kinds. Lookup is case-sensitive:
// "Select" is a plain symbol, only "select" is the keyword.
var keywords = map[string]Kind{
	"select": SELECT,
	"from":   FROM,
	"where":  WHERE,
	"limit":  LIMIT,
	"offset": OFFSET,
	"order":  ORDER,
	"by":     BY,
}

// LookupSymbol resolves an alphabetic run against the keyword table,
// returning SYMBOL for anything that is not an exact keyword match.
func LookupSymbol(literal string) Kind {
	if kind, ok := keywords[literal]; ok {
		return kind
	}
	return SYMBOL
}
