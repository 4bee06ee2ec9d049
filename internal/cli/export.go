package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hupe1980/moments/core"
)

func newExportCmd() *cobra.Command {
	var asSnapshot bool

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a document as JSON",
		Long:  "export parses a moment document (or a snapshot with --snapshot) and prints its dictionary form as indented JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var dict map[string]any
			if asSnapshot {
				snap, err := core.ParseSnapshotText(string(data))
				if err != nil {
					return err
				}
				dict = snap.Dict()
			} else {
				moment, err := core.ParseMomentText(string(data))
				if err != nil {
					return err
				}
				dict = moment.Dict()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dict)
		},
	}

	cmd.Flags().BoolVar(&asSnapshot, "snapshot", false, "treat the input as a snapshot document")
	return cmd
}
