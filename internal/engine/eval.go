package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitql-labs/gitql/internal/transform"
	"github.com/gitql-labs/gitql/pkg/object"
	"github.com/gitql-labs/gitql/pkg/parser"
)

// Truthy and falsy text values. Every evaluation result is text, booleans
// included; a single string-returning contract serves all node kinds.
const (
	textTrue  = "true"
	textFalse = "false"
)

// Evaluator computes expression values against records. The transformation
// registry is injected rather than ambient so evaluation has no hidden
// dependencies.
type Evaluator struct {
	transforms *transform.Registry
}

// NewEvaluator creates an evaluator backed by the given registry.
func NewEvaluator(transforms *transform.Registry) *Evaluator {
	return &Evaluator{transforms: transforms}
}

// Evaluate produces the text value of expr for one record. Failures are
// contract violations (missing field, unknown function): the query is
// lost, the process is not.
func (e *Evaluator) Evaluate(expr parser.Expr, rec object.Record) (string, error) {
	switch node := expr.(type) {
	case *parser.StringExpr:
		return node.Value, nil

	case *parser.SymbolExpr:
		value, ok := rec.Get(node.Name)
		if !ok {
			return "", &FieldNotFoundError{Field: node.Name}
		}
		return value, nil

	case *parser.NotExpr:
		value, err := e.Evaluate(node.Right, rec)
		if err != nil {
			return "", err
		}
		return formatBool(value != textTrue), nil

	case *parser.ComparisonExpr:
		return e.evalComparison(node, rec)

	case *parser.CheckExpr:
		return e.evalCheck(node, rec)

	case *parser.LogicalExpr:
		return e.evalLogical(node, rec)

	case *parser.CallExpr:
		value, err := e.Evaluate(node.Left, rec)
		if err != nil {
			return "", err
		}
		fn, ok := e.transforms.Lookup(node.FunctionName)
		if !ok {
			return "", &UnknownFunctionError{Name: node.FunctionName}
		}
		return fn(value), nil

	default:
		return "", fmt.Errorf("unsupported expression %T", expr)
	}
}

// evalComparison compares the evaluated texts lexicographically. "9" sorts
// after "10"; numeric-looking values get no special treatment.
func (e *Evaluator) evalComparison(node *parser.ComparisonExpr, rec object.Record) (string, error) {
	left, err := e.Evaluate(node.Left, rec)
	if err != nil {
		return "", err
	}
	right, err := e.Evaluate(node.Right, rec)
	if err != nil {
		return "", err
	}

	cmp := strings.Compare(left, right)
	switch node.Operator {
	case parser.Greater:
		return formatBool(cmp > 0), nil
	case parser.GreaterEqual:
		return formatBool(cmp >= 0), nil
	case parser.Less:
		return formatBool(cmp < 0), nil
	case parser.LessEqual:
		return formatBool(cmp <= 0), nil
	case parser.Equal:
		return formatBool(cmp == 0), nil
	case parser.NotEqual:
		return formatBool(cmp != 0), nil
	default:
		return "", fmt.Errorf("unsupported comparison operator %d", node.Operator)
	}
}

func (e *Evaluator) evalCheck(node *parser.CheckExpr, rec object.Record) (string, error) {
	value, err := e.Evaluate(node.Left, rec)
	if err != nil {
		return "", err
	}
	expected, err := e.Evaluate(node.Right, rec)
	if err != nil {
		return "", err
	}

	switch node.Operator {
	case parser.Contains:
		return formatBool(strings.Contains(value, expected)), nil
	case parser.StartsWith:
		return formatBool(strings.HasPrefix(value, expected)), nil
	case parser.EndsWith:
		return formatBool(strings.HasSuffix(value, expected)), nil
	case parser.Matches:
		// Fail-soft: a pattern that does not compile is "false", never an
		// error. Pattern problems are not structural query problems.
		re, err := regexp.Compile(expected)
		if err != nil {
			return textFalse, nil
		}
		return formatBool(re.MatchString(value)), nil
	default:
		return "", fmt.Errorf("unsupported check operator %d", node.Operator)
	}
}

// evalLogical short-circuits and/or on the left operand; the right operand
// is never evaluated when the left already decides.
func (e *Evaluator) evalLogical(node *parser.LogicalExpr, rec object.Record) (string, error) {
	left, err := e.Evaluate(node.Left, rec)
	if err != nil {
		return "", err
	}
	lhs := left == textTrue

	if node.Operator == parser.And && !lhs {
		return textFalse, nil
	}
	if node.Operator == parser.Or && lhs {
		return textTrue, nil
	}

	right, err := e.Evaluate(node.Right, rec)
	if err != nil {
		return "", err
	}
	rhs := right == textTrue

	switch node.Operator {
	case parser.And:
		return formatBool(lhs && rhs), nil
	case parser.Or:
		return formatBool(lhs || rhs), nil
	case parser.Xor:
		return formatBool(lhs != rhs), nil
	default:
		return "", fmt.Errorf("unsupported logical operator %d", node.Operator)
	}
}

func formatBool(b bool) string {
	if b {
		return textTrue
	}
	return textFalse
}
