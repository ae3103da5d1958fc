package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/gitql-labs/gitql/pkg/object"
)

// Memory is an in-memory record source, used as a fixture in tests and by
// embedders that already hold their records.
type Memory struct {
	tables map[string][]object.Record
}

// NewMemory creates a memory source over the given tables.
func NewMemory(tables map[string][]object.Record) *Memory {
	return &Memory{tables: tables}
}

// Fetch returns copies of the table's records restricted to fields.
func (m *Memory) Fetch(_ context.Context, table string, fields []string) ([]object.Record, error) {
	records, ok := m.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	out := make([]object.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, restrict(rec.Clone(), fields))
	}
	return out, nil
}

// Tables lists the table names in sorted order.
func (m *Memory) Tables() []string {
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
