// Package commands implements the gitql subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitql-labs/gitql/internal/cli/config"
	"github.com/gitql-labs/gitql/internal/engine"
	"github.com/gitql-labs/gitql/internal/source"
)

// fieldLister is implemented by record sources that can enumerate the
// fields of a table without fetching it.
type fieldLister interface {
	FieldsOf(table string) ([]string, bool)
}

// queryRunner abstracts the engine for command-level tests.
type queryRunner interface {
	Run(ctx context.Context, query string) (*engine.Result, error)
}

// openSource builds the record source selected by the configuration. The
// returned closer releases source resources and must always be called.
func openSource(cfg *config.Config) (source.Source, func() error, error) {
	switch cfg.Source.Type {
	case "sqlite":
		s, err := source.OpenSQLite(cfg.Source.Database)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "git":
		s, err := source.OpenGit(cfg.Source.Repo)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// newEngine builds an engine over src wired to the command's logger.
func newEngine(cmd *cobra.Command, src source.Source) *engine.Engine {
	return engine.New(engine.Config{
		Source: src,
		Logger: config.GetLogger(cmd.Context()),
	})
}
