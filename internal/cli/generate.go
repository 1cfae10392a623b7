package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
)

func newGenerateCommand(fn *udf.Function) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [date]",
		Short: "Generate a ULID, optionally using date as its timestamp",
		Example: `  ulid generate
  ulid generate "1983-04-13 12:09:14.274"
  ulid generate NULL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			if rows < 1 {
				return fmt.Errorf("--rows must be at least 1, got %d", rows)
			}

			callArgs := make([]resolver.Arg, 0, len(args))
			for _, a := range args {
				if a == NullLiteral {
					callArgs = append(callArgs, resolver.NullArg())
					continue
				}
				callArgs = append(callArgs, resolver.ValueArg(a))
			}

			handle, err := fn.Init(cmd.Context(), callArgs)
			if err != nil {
				return err
			}
			for i := 0; i < rows; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), handle.Process())
			}
			return nil
		},
	}
	cmd.Flags().Int("rows", 1, "Number of rows to process after a single init")
	return cmd
}
