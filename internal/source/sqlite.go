package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gitql-labs/gitql/pkg/object"

	// sqlite driver for file-backed record sources.
	_ "modernc.org/sqlite"
)

// SQLite serves records from tables of a SQLite database file. The file is
// opened read-only; every column value is rendered as text so the records
// obey the uniform textual value model.
type SQLite struct {
	db     *sql.DB
	tables []string
}

// OpenSQLite opens the database file read-only and indexes its tables.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	s := &SQLite{db: db}
	if err := s.loadTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteFromDB wraps an existing handle; used by tests.
func NewSQLiteFromDB(db *sql.DB, tables []string) *SQLite {
	return &SQLite{db: db, tables: tables}
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) loadTables(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type IN ('table', 'view')
		AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		s.tables = append(s.tables, name)
	}
	return rows.Err()
}

// Tables lists the database's tables and views.
func (s *SQLite) Tables() []string {
	return s.tables
}

// FieldsOf returns the column names of a table, in declaration order.
func (s *SQLite) FieldsOf(table string) ([]string, bool) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT * FROM %s LIMIT 0", quoteIdent(table)))
	if err != nil {
		return nil, false
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, false
	}
	return cols, true
}

// Fetch runs a plain projection query over the table and stringifies every
// value. NULL becomes the empty string.
func (s *SQLite) Fetch(ctx context.Context, table string, fields []string) ([]object.Record, error) {
	projection := "*"
	if len(fields) > 0 {
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quoteIdent(f)
		}
		projection = strings.Join(quoted, ", ")
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", projection, quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []object.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(object.Record, len(cols))
		for i, col := range cols {
			rec[col] = stringify(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// stringify renders a scanned value as text.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// quoteIdent quotes an identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
