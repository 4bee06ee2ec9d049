package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/moments/core"
	"github.com/hupe1980/moments/store/sqlite"
)

func newChainCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Store and inspect snapshot chains",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "moments.db", "path to the SQLite database")

	cmd.AddCommand(
		newChainAddCmd(&dbPath),
		newChainShowCmd(&dbPath),
		newChainHistoryCmd(&dbPath),
	)
	return cmd
}

func newChainAddCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Parse a snapshot document and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			snap, err := core.ParseSnapshotText(string(data))
			if err != nil {
				return err
			}

			st, err := sqlite.Open(*dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Put(cmd.Context(), snap); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
			return err
		},
	}
}

func newChainShowCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <snapshot-id>",
		Short: "Print a stored snapshot in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sqlite.Open(*dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snap.Text())
			return err
		},
	}
}

func newChainHistoryCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history <snapshot-id>",
		Short: "List a chain from a snapshot back to its start, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sqlite.Open(*dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			history, err := st.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, snap := range history {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", snap.ID, snap.Timestamp); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
