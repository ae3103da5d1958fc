package parser

// Expr is an expression tree node that produces a text value from a record.
// The set of implementations is closed; evaluation lives in the engine as
// an exhaustive switch over these variants. Composite nodes exclusively own
// their operands: the AST is a tree, never a graph.
type Expr interface {
	exprNode()
}

// StringExpr is a literal text value. Number literals are carried the same
// way; every evaluated value in the language is text.
type StringExpr struct {
	Value string
}

func (*StringExpr) exprNode() {}

// SymbolExpr references a record field by exact name.
type SymbolExpr struct {
	Name string
}

func (*SymbolExpr) exprNode() {}

// NotExpr is logical negation of its operand's truthiness.
type NotExpr struct {
	Right Expr
}

func (*NotExpr) exprNode() {}

// ComparisonOp selects the ordering test of a ComparisonExpr.
type ComparisonOp int

// Comparison operators. Comparison is lexicographic over the evaluated
// text, never numeric.
const (
	Greater ComparisonOp = iota
	GreaterEqual
	Less
	LessEqual
	Equal
	NotEqual
)

// ComparisonExpr compares the text values of its operands.
type ComparisonExpr struct {
	Left     Expr
	Operator ComparisonOp
	Right    Expr
}

func (*ComparisonExpr) exprNode() {}

// CheckOp selects the membership test of a CheckExpr.
type CheckOp int

// Check operators. Contains, StartsWith and EndsWith are literal substring
// tests; Matches compiles its right operand as a regular expression at
// evaluation time.
const (
	Contains CheckOp = iota
	StartsWith
	EndsWith
	Matches
)

// CheckExpr tests the left operand's text against the right operand.
type CheckExpr struct {
	Left     Expr
	Operator CheckOp
	Right    Expr
}

func (*CheckExpr) exprNode() {}

// LogicalOp selects the combinator of a LogicalExpr.
type LogicalOp int

// Logical operators. And and Or short-circuit on the left operand.
const (
	And LogicalOp = iota
	Or
	Xor
)

// LogicalExpr combines the truthiness of its operands.
type LogicalExpr struct {
	Left     Expr
	Operator LogicalOp
	Right    Expr
}

func (*LogicalExpr) exprNode() {}

// CallExpr applies a named unary text transformation, resolved in the
// engine's transformation registry, to its operand's value.
type CallExpr struct {
	Left         Expr
	FunctionName string
}

func (*CallExpr) exprNode() {}

// Statement is one stage of the query pipeline. Like Expr the variant set
// is closed and execution is an exhaustive switch in the engine. A compiled
// query is an ordered statement list and the engine honors that order
// verbatim: limit before where truncates before filtering.
type Statement interface {
	stmtNode()
}

// SelectStatement fetches the initial record set for a table from the
// record source. Fields nil or empty means every field ("select *").
type SelectStatement struct {
	TableName string
	Fields    []string
}

func (*SelectStatement) stmtNode() {}

// WhereStatement retains only records whose condition evaluates to "true".
type WhereStatement struct {
	Condition Expr
}

func (*WhereStatement) stmtNode() {}

// LimitStatement truncates the result buffer to at most Count records.
type LimitStatement struct {
	Count int
}

func (*LimitStatement) stmtNode() {}

// OffsetStatement drops the leading Count records.
type OffsetStatement struct {
	Count int
}

func (*OffsetStatement) stmtNode() {}

// OrderByStatement stably sorts the buffer ascending by a field's text
// value. It is a no-op when the buffer is empty or the first record lacks
// the field.
type OrderByStatement struct {
	FieldName string
}

func (*OrderByStatement) stmtNode() {}
