package parser

import (
	"fmt"

	"github.com/gitql-labs/gitql/pkg/token"
)

// Diagnostic is the terminal error value produced by the lexer and the
// parser: a human-readable message plus the originating span. Rendering is
// the caller's concern; the core only constructs and propagates the value.
type Diagnostic struct {
	Message  string
	Location token.Location
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("error(%d:%d): %s", d.Location.Start, d.Location.End, d.Message)
}

// errorf builds a Diagnostic at the given span.
func errorf(loc token.Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}
