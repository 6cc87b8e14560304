// ABOUTME: CLI command to clear the entire embedding store
// ABOUTME: Requires --yes; clearing also invalidates the search cache
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearConfirmed bool

// NewClearCmd creates clear command
func NewClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored embeddings",
		Long: `Remove every embedding record and reset the store.

The store's dimension stamp is cleared too, so the next write may use a
different encoder. Requires --yes.

Examples:
  mailvec clear --yes`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolVar(&clearConfirmed, "yes", false, "Confirm clearing the store")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearConfirmed {
		return fmt.Errorf("refusing to clear without --yes")
	}

	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	if err := engine.Reset(); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Store cleared")
	}
	return nil
}
