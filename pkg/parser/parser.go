// Package parser provides lexical analysis and parsing for the gitql query
// language.
//
// # Grammar Overview
//
//	query    → select clause*
//	select   → SELECT ('*' | symbol (',' symbol)*) FROM symbol
//	clause   → WHERE cond | LIMIT number | OFFSET number | ORDER BY symbol
//	cond     → andCond ('|' andCond)*
//	andCond  → equality ('&' equality)*
//	equality → operand ['=' operand]
//	operand  → symbol | string | number
//
// Clauses compile to statements in exactly the order they are written;
// the engine executes them in that order with no reordering.
package parser

import (
	"strconv"

	"github.com/gitql-labs/gitql/pkg/token"
)

// Parse tokenizes and parses query text into an ordered statement list.
func Parse(query string) ([]Statement, *Diagnostic) {
	tokens, diag := Tokenize(query)
	if diag != nil {
		return nil, diag
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an already-tokenized query.
func ParseTokens(tokens []token.Token) ([]Statement, *Diagnostic) {
	p := &parser{tokens: tokens}
	return p.parseQuery()
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) parseQuery() ([]Statement, *Diagnostic) {
	if p.atEnd() {
		return nil, errorf(token.Location{}, "empty query")
	}

	var statements []Statement

	selectStmt, diag := p.parseSelect()
	if diag != nil {
		return nil, diag
	}
	statements = append(statements, selectStmt)

	for !p.atEnd() {
		tok := p.current()
		switch tok.Kind {
		case token.WHERE:
			p.advance()
			cond, diag := p.parseCondition()
			if diag != nil {
				return nil, diag
			}
			statements = append(statements, &WhereStatement{Condition: cond})

		case token.LIMIT:
			p.advance()
			count, diag := p.parseCount("limit")
			if diag != nil {
				return nil, diag
			}
			statements = append(statements, &LimitStatement{Count: count})

		case token.OFFSET:
			p.advance()
			count, diag := p.parseCount("offset")
			if diag != nil {
				return nil, diag
			}
			statements = append(statements, &OffsetStatement{Count: count})

		case token.ORDER:
			p.advance()
			if !p.check(token.BY) {
				return nil, errorf(p.currentLocation(), "expected `by` after `order`")
			}
			p.advance()
			if !p.check(token.SYMBOL) {
				return nil, errorf(p.currentLocation(), "expected field name after `order by`")
			}
			statements = append(statements, &OrderByStatement{FieldName: p.current().Literal})
			p.advance()

		case token.SELECT:
			return nil, errorf(tok.Location, "a query contains a single select")

		default:
			return nil, errorf(tok.Location, "unexpected token %s", tok.Kind)
		}
	}

	return statements, nil
}

// parseSelect parses `select <fields> from <table>`. A star field list
// compiles to an empty Fields slice, which record sources read as "all".
func (p *parser) parseSelect() (*SelectStatement, *Diagnostic) {
	if !p.check(token.SELECT) {
		return nil, errorf(p.currentLocation(), "query must start with `select`")
	}
	p.advance()

	var fields []string
	if p.check(token.STAR) {
		p.advance()
	} else {
		for {
			if !p.check(token.SYMBOL) {
				return nil, errorf(p.currentLocation(), "expected field name in select list")
			}
			fields = append(fields, p.current().Literal)
			p.advance()
			if !p.check(token.COMMA) {
				break
			}
			p.advance()
		}
	}

	if !p.check(token.FROM) {
		return nil, errorf(p.currentLocation(), "expected `from` after select list")
	}
	p.advance()

	if !p.check(token.SYMBOL) {
		return nil, errorf(p.currentLocation(), "expected table name after `from`")
	}
	table := p.current().Literal
	p.advance()

	return &SelectStatement{TableName: table, Fields: fields}, nil
}

// parseCondition parses a where condition. `|` binds loosest, then `&`,
// then `=`; all are left-associative.
func (p *parser) parseCondition() (Expr, *Diagnostic) {
	left, diag := p.parseAndCondition()
	if diag != nil {
		return nil, diag
	}
	for p.check(token.OR) {
		p.advance()
		right, diag := p.parseAndCondition()
		if diag != nil {
			return nil, diag
		}
		left = &LogicalExpr{Left: left, Operator: Or, Right: right}
	}
	return left, nil
}

func (p *parser) parseAndCondition() (Expr, *Diagnostic) {
	left, diag := p.parseEquality()
	if diag != nil {
		return nil, diag
	}
	for p.check(token.AND) {
		p.advance()
		right, diag := p.parseEquality()
		if diag != nil {
			return nil, diag
		}
		left = &LogicalExpr{Left: left, Operator: And, Right: right}
	}
	return left, nil
}

func (p *parser) parseEquality() (Expr, *Diagnostic) {
	left, diag := p.parseOperand()
	if diag != nil {
		return nil, diag
	}
	if p.check(token.EQ) {
		p.advance()
		right, diag := p.parseOperand()
		if diag != nil {
			return nil, diag
		}
		return &ComparisonExpr{Left: left, Operator: Equal, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseOperand() (Expr, *Diagnostic) {
	if p.atEnd() {
		return nil, errorf(p.currentLocation(), "unexpected end of query, expected a value")
	}
	tok := p.current()
	switch tok.Kind {
	case token.SYMBOL:
		p.advance()
		return &SymbolExpr{Name: tok.Literal}, nil
	case token.STRING, token.NUMBER:
		p.advance()
		return &StringExpr{Value: tok.Literal}, nil
	default:
		return nil, errorf(tok.Location, "unexpected token %s, expected a value", tok.Kind)
	}
}

// parseCount parses the numeric argument of limit/offset. Number tokens
// keep their literal as text, so integer validation happens here.
func (p *parser) parseCount(clause string) (int, *Diagnostic) {
	if !p.check(token.NUMBER) {
		return 0, errorf(p.currentLocation(), "expected number after `%s`", clause)
	}
	tok := p.current()
	count, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, errorf(tok.Location, "invalid %s count %q", clause, tok.Literal)
	}
	p.advance()
	return count, nil
}

// ---------- Token helpers ----------

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) check(k token.Kind) bool {
	return !p.atEnd() && p.tokens[p.pos].Kind == k
}

func (p *parser) advance() {
	p.pos++
}

// currentLocation is the span reported for errors: the current token's, or
// a zero-width span just past the last token when input is exhausted.
func (p *parser) currentLocation() token.Location {
	if !p.atEnd() {
		return p.tokens[p.pos].Location
	}
	if len(p.tokens) == 0 {
		return token.Location{}
	}
	end := p.tokens[len(p.tokens)-1].Location.End
	return token.Location{Start: end, End: end}
}
