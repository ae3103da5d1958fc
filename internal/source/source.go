// Package source provides record sources: backends that materialize the
// initial record set for a table. The query core is source-agnostic and
// only ever sees the fetched records.
package source

import (
	"context"

	"github.com/gitql-labs/gitql/pkg/object"
)

// Source fetches records for a table, restricted to the requested fields.
// An empty fields slice means every field. Table and field names pass
// through unvalidated; unknown tables are the source's error to report.
// Fetch is a blocking call from the engine's perspective.
type Source interface {
	Fetch(ctx context.Context, table string, fields []string) ([]object.Record, error)

	// Tables lists the table names the source can serve, for completion
	// and the `tables` command.
	Tables() []string
}

// restrict copies a record keeping only the requested fields. Requested
// fields absent from the record are dropped silently; field presence is
// the evaluator's concern, not the source's.
func restrict(rec object.Record, fields []string) object.Record {
	if len(fields) == 0 {
		return rec
	}
	out := make(object.Record, len(fields))
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}
