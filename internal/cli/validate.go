package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/moments/core"
)

func newValidateCmd() *cobra.Command {
	var asSnapshot bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document parses",
		Long:  "validate parses a moment document (or a snapshot with --snapshot) and reports the first error, including line and column for syntax errors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if asSnapshot {
				if _, err := core.ParseSnapshotText(string(data)); err != nil {
					return fmt.Errorf("invalid snapshot: %w", err)
				}
			} else {
				if _, err := core.ParseMomentText(string(data)); err != nil {
					return fmt.Errorf("invalid moment: %w", err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}

	cmd.Flags().BoolVar(&asSnapshot, "snapshot", false, "treat the input as a snapshot document")
	return cmd
}
