// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Engine construction, encoder selection, and display helpers
package commands

import (
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/mailvec/internal/config"
	"github.com/harper/mailvec/internal/encoder"
	"github.com/harper/mailvec/internal/search"
	"github.com/harper/mailvec/internal/storage/sqlite"
)

// openEngine builds the similarity engine from config: SQLite store, encoder
// (model-backed with deterministic fallback, or hash-only without an API
// key), and the result cache. The returned closer must be called on exit.
func openEngine() (*search.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	store := sqlite.NewRecordStore(db)
	enc, encName := buildEncoder(cfg)

	// Stamp the encoder identity on first use so a later model change is
	// visible next to the dimension stamp.
	if stamped, err := store.GetMeta(sqlite.MetaKeyEncoder); err == nil && stamped == "" {
		_ = store.SetMeta(sqlite.MetaKeyEncoder, encName)
	}

	engine := search.NewEngine(store, enc, search.NewCache(cfg.CacheTTL))
	return engine, func() { _ = db.Close() }, nil
}

// buildEncoder picks the encoder variant: OpenAI wrapped in the
// deterministic fallback when a key is present, hash-only otherwise.
func buildEncoder(cfg *config.Config) (encoder.Encoder, string) {
	if cfg.OpenAIKey == "" {
		if verbose {
			fmt.Fprintln(os.Stderr, "Warning: OPENAI_API_KEY not set, using deterministic fallback encoder")
		}
		return encoder.NewHashEncoder(cfg.VectorDimension), "deterministic-hash"
	}

	primary, err := encoder.NewOpenAIEncoder(&encoder.OpenAIConfig{
		APIKey:     cfg.OpenAIKey,
		Model:      openai.EmbeddingModel(cfg.EmbeddingModel),
		Dimension:  cfg.VectorDimension,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.Timeout,
	})
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize OpenAI encoder: %v\n", err)
		}
		return encoder.NewHashEncoder(cfg.VectorDimension), "deterministic-hash"
	}

	return encoder.NewFallback(primary), cfg.EmbeddingModel
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
