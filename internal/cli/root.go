// Package cli implements the mdl command line tool: validating, formatting
// and exporting moment documents, and inspecting snapshot chains.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mdl",
		Short:         "Work with moment documents and snapshot chains",
		Long:          "mdl validates, formats and exports moment documents, and stores and inspects snapshot chains in a local SQLite database.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newFmtCmd(),
		newExportCmd(),
		newChainCmd(),
	)

	return rootCmd
}

// readInput returns the contents of path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}
