package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/moments/core"
)

func newFmtCmd() *cobra.Command {
	var asSnapshot bool
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a document in canonical form",
		Long:  "fmt parses a moment document (or a snapshot with --snapshot) and prints its canonical rendering. With -w the file is rewritten in place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var canonical string
			if asSnapshot {
				snap, err := core.ParseSnapshotText(string(data))
				if err != nil {
					return err
				}
				canonical = snap.Text()
			} else {
				moment, err := core.ParseMomentText(string(data))
				if err != nil {
					return err
				}
				canonical = moment.Text()
			}

			if write {
				if args[0] == "-" {
					return fmt.Errorf("cannot write in place when reading stdin")
				}
				return os.WriteFile(args[0], []byte(canonical), 0o644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), canonical)
			return err
		},
	}

	cmd.Flags().BoolVar(&asSnapshot, "snapshot", false, "treat the input as a snapshot document")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file instead of printing")
	return cmd
}
