// Package object defines the record model shared by the record sources and
// the query engine.
package object

import "sort"

// Record is one queried entity: a flat mapping from field name to field
// value. Every value is text regardless of its original type; comparison,
// ordering and pattern matching all operate uniformly on the text form.
// Field names within one record are unique by construction; records from
// the same table are assumed to share a field set.
type Record map[string]string

// Get returns the value of a field and whether the field exists.
func (r Record) Get(field string) (string, bool) {
	value, ok := r[field]
	return value, ok
}

// Has reports whether the record carries the field.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Clone returns an independent copy. Records are value types: pipeline
// stages that drop records rebuild slices and never mutate survivors.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Fields returns the record's field names in sorted order. Rendering uses
// this when the query did not name explicit fields.
func (r Record) Fields() []string {
	fields := make([]string, 0, len(r))
	for k := range r {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
