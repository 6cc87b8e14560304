// ABOUTME: CLI command to delete all embedding records for a message
// ABOUTME: Cascade delete by message id; unknown ids are a quiet no-op
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <message-id>",
		Short: "Delete all records for a message",
		Long: `Delete every embedding record stored for a message id.

Deleting a message id with no records is a no-op, not an error.

Examples:
  mailvec delete msg-123`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	messageID := args[0]

	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	if err := engine.DeleteMessage(messageID); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted records for %s\n", messageID)
	}
	return nil
}
