// Package cli wires the ulid() callable into cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/config"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
)

// NullLiteral on the command line stands for a null argument.
const NullLiteral = "NULL"

// NewRootCommand constructs the root command with the generate, parse,
// validate and serve subcommands.
func NewRootCommand(cfg *config.Config, fn *udf.Function) *cobra.Command {
	root := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and inspect ULIDs",
		Long:          "ulid produces lexicographically sortable identifiers, optionally seeded from a date string.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCommand(fn))
	root.AddCommand(newParseCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newServeCommand(cfg, fn))
	return root
}
