// ABOUTME: CLI command to show embedding store statistics
// ABOUTME: Record counts, category breakdown, timestamp range, storage size
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show embedding store statistics",
		Long: `Show statistics for the local embedding store.

Examples:
  mailvec stats
  mailvec stats --format json`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	stats, err := engine.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Records:\t%d\n", stats.Count)
	if stats.Count > 0 {
		fmt.Fprintf(w, "Oldest:\t%s\n", formatTime(stats.OldestTimestamp))
		fmt.Fprintf(w, "Newest:\t%s\n", formatTime(stats.NewestTimestamp))
	}
	fmt.Fprintf(w, "Storage:\t~%d KB\n", stats.ApproximateStorageBytes/1024)
	for category, count := range stats.ByCategory {
		fmt.Fprintf(w, "  %s:\t%d\n", category, count)
	}
	return w.Flush()
}
