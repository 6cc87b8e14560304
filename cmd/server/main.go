// ABOUTME: Main entry point for the standalone mailvec MCP server
// ABOUTME: Initializes the store, encoder, and engine, then serves stdio
package main

import (
	"log"

	"github.com/harper/mailvec/internal/config"
	"github.com/harper/mailvec/internal/encoder"
	"github.com/harper/mailvec/internal/mcp"
	"github.com/harper/mailvec/internal/search"
	"github.com/harper/mailvec/internal/storage/sqlite"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	store := sqlite.NewRecordStore(db)

	// Model-backed encoder with deterministic fallback; hash-only without a key
	var enc encoder.Encoder
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - using deterministic fallback embeddings")
		enc = encoder.NewHashEncoder(cfg.VectorDimension)
	} else {
		primary, err := encoder.NewOpenAIEncoder(&encoder.OpenAIConfig{
			APIKey:     cfg.OpenAIKey,
			Model:      openai.EmbeddingModel(cfg.EmbeddingModel),
			Dimension:  cfg.VectorDimension,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
			Timeout:    cfg.Timeout,
		})
		if err != nil {
			log.Fatalf("Failed to initialize encoder: %v", err)
		}
		enc = encoder.NewFallback(primary)
	}

	engine := search.NewEngine(store, enc, search.NewCache(cfg.CacheTTL))

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Mailvec Embedding Store",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, engine)

	// Start server with stdio transport
	log.Println("mailvec MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
