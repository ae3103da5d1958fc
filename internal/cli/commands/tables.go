package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitql-labs/gitql/internal/cli/config"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the configured source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetCurrentConfig()
			src, closeSource, err := openSource(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeSource() }()

			for _, name := range src.Tables() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <table>",
		Short: "List the fields of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			src, closeSource, err := openSource(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeSource() }()

			lister, ok := src.(fieldLister)
			if !ok {
				return fmt.Errorf("the %s source cannot list fields", cfg.Source.Type)
			}
			fields, ok := lister.FieldsOf(args[0])
			if !ok {
				return fmt.Errorf("unknown table %q", args[0])
			}
			for _, field := range fields {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), field)
			}
			return nil
		},
	}
}
