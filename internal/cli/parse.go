package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/generator"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <ulid>",
		Short: "Print the timestamp and entropy of a ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := generator.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ulid:         %s\n", res.ULID)
			fmt.Fprintf(out, "timestamp_ms: %d\n", res.TimestampMs)
			fmt.Fprintf(out, "time:         %s\n", res.Time.Format(time.RFC3339Nano))
			fmt.Fprintf(out, "entropy:      %s\n", res.RandomPayload)
			return nil
		},
	}
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <ulid>",
		Short: "Check that a string is a well-formed ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, reason := generator.Validate(args[0]); !ok {
				return errors.New(reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
