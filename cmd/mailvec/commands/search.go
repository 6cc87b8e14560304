// ABOUTME: CLI command to search stored email embeddings
// ABOUTME: Similarity search with category, sender, and date filters
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/mailvec/internal/models"
	"github.com/joho/godotenv"
)

var (
	searchLimit     int
	searchThreshold float64
	searchCategory  string
	searchSender    string
	searchSince     string
	searchUntil     string
)

// NewSearchCmd creates search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search stored messages by similarity",
		Long: `Search stored email embeddings by semantic similarity.

Results are ranked by cosine similarity against the query embedding.
Filters narrow the candidate set before scoring.

Examples:
  mailvec search "budget approval"
  mailvec search --limit 10 --category work "quarterly planning"
  mailvec search --sender alice --since 2026-08-01T00:00:00Z "travel receipts"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", models.DefaultSearchLimit, "Maximum results to return")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", models.DefaultSearchThreshold, "Minimum similarity in [0,1]")
	cmd.Flags().StringVar(&searchCategory, "category", "", "Exact category filter")
	cmd.Flags().StringVar(&searchSender, "sender", "", "Sender substring filter (case-insensitive)")
	cmd.Flags().StringVar(&searchSince, "since", "", "Inclusive range start (RFC 3339)")
	cmd.Flags().StringVar(&searchUntil, "until", "", "Inclusive range end (RFC 3339)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	category, err := models.ParseCategory(searchCategory)
	if err != nil {
		return err
	}

	query := models.SearchQuery{
		Text:      args[0],
		Limit:     searchLimit,
		Threshold: searchThreshold,
		Category:  category,
		Sender:    searchSender,
	}

	if searchSince != "" || searchUntil != "" {
		dr := &models.DateRange{End: time.Now()}
		if searchSince != "" {
			if dr.Start, err = time.Parse(time.RFC3339, searchSince); err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
		}
		if searchUntil != "" {
			if dr.End, err = time.Parse(time.RFC3339, searchUntil); err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}
		}
		query.DateRange = dr
	}

	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	result, err := engine.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if len(result.Results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No matches for query: %s\n", query.Text)
		}
		return nil
	}

	// Format output
	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tMESSAGE\tFROM\tWHEN\tPREVIEW\n")
		fmt.Fprintf(w, "-----\t-------\t----\t----\t-------\n")

		for _, r := range result.Results {
			fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\t%s\n",
				r.Similarity,
				truncate(r.MessageID, 20),
				truncate(r.Metadata.Sender, 24),
				formatTime(r.Metadata.Timestamp),
				truncate(r.Text, 48))
		}
		_ = w.Flush()

		if !quiet && result.TotalFound > len(result.Results) {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d matches shown\n", len(result.Results), result.TotalFound)
		}
	}

	return nil
}
