package engine

import "fmt"

// FieldNotFoundError reports a symbol expression referencing a field the
// record does not carry. It fails the query but never the process.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found", e.Field)
}

// UnknownFunctionError reports a call expression naming a transformation
// that is not in the registry.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}
