// Package engine executes compiled query statements against a record
// source, transforming a shared result buffer one statement at a time.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gitql-labs/gitql/internal/source"
	"github.com/gitql-labs/gitql/internal/transform"
	"github.com/gitql-labs/gitql/pkg/object"
	"github.com/gitql-labs/gitql/pkg/parser"
)

// Engine runs queries. It is safe for concurrent use: each execution owns
// its result buffer, and the transformation registry is read-only after
// startup.
type Engine struct {
	source     source.Source
	evaluator  *Evaluator
	transforms *transform.Registry
	logger     *slog.Logger
}

// Config holds engine dependencies.
type Config struct {
	Source     source.Source
	Transforms *transform.Registry // nil means transform.Default()
	Logger     *slog.Logger        // nil means slog.Default()
}

// New creates an engine.
func New(cfg Config) *Engine {
	transforms := cfg.Transforms
	if transforms == nil {
		transforms = transform.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		source:     cfg.Source,
		evaluator:  NewEvaluator(transforms),
		transforms: transforms,
		logger:     logger,
	}
}

// Result is the outcome of one query execution.
type Result struct {
	ID      string
	Records []object.Record
	Elapsed time.Duration
}

// Run parses and executes query text.
func (e *Engine) Run(ctx context.Context, query string) (*Result, error) {
	statements, diag := parser.Parse(query)
	if diag != nil {
		return nil, diag
	}
	return e.Execute(ctx, statements)
}

// Execute runs an ordered statement list against one fresh record buffer.
// Statements execute in exactly the given order; limit before where
// truncates before filtering, as written.
func (e *Engine) Execute(ctx context.Context, statements []parser.Statement) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()

	var records []object.Record
	for _, stmt := range statements {
		var err error
		records, err = e.executeStatement(ctx, stmt, records)
		if err != nil {
			e.logger.Debug("query failed", "run_id", runID, "error", err)
			return nil, err
		}
	}

	elapsed := time.Since(start)
	e.logger.Debug("query complete", "run_id", runID, "records", len(records), "elapsed", elapsed)

	return &Result{ID: runID, Records: records, Elapsed: elapsed}, nil
}

func (e *Engine) executeStatement(ctx context.Context, stmt parser.Statement, records []object.Record) ([]object.Record, error) {
	switch s := stmt.(type) {
	case *parser.SelectStatement:
		fetched, err := e.source.Fetch(ctx, s.TableName, s.Fields)
		if err != nil {
			return nil, err
		}
		return append(records, fetched...), nil

	case *parser.WhereStatement:
		kept := make([]object.Record, 0, len(records))
		for _, rec := range records {
			value, err := e.evaluator.Evaluate(s.Condition, rec)
			if err != nil {
				return nil, err
			}
			if value == textTrue {
				kept = append(kept, rec)
			}
		}
		return kept, nil

	case *parser.OrderByStatement:
		// No-op on an empty buffer or when the first record lacks the
		// field; other records are not inspected.
		if len(records) == 0 || !records[0].Has(s.FieldName) {
			return records, nil
		}
		sort.SliceStable(records, func(i, j int) bool {
			return records[i][s.FieldName] < records[j][s.FieldName]
		})
		return records, nil

	case *parser.LimitStatement:
		if s.Count < len(records) {
			records = records[:s.Count]
		}
		return records, nil

	case *parser.OffsetStatement:
		drop := s.Count
		if drop > len(records) {
			drop = len(records)
		}
		return records[drop:], nil

	default:
		return nil, fmt.Errorf("unsupported statement %T", stmt)
	}
}

// Transforms exposes the registry, e.g. for completion.
func (e *Engine) Transforms() *transform.Registry {
	return e.transforms
}

// Source exposes the record source.
func (e *Engine) Source() source.Source {
	return e.source
}
