// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes store/search tools to LLM agents via stdio
package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/mailvec/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs mailvec as an MCP (Model Context Protocol) server, exposing the
embedding store and similarity search over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  mailvec mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "mailvec": {
  #       "command": "mailvec",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" && !quiet {
		log.Println("Warning: OPENAI_API_KEY not set - using deterministic fallback embeddings")
	}

	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	server := mcpserver.NewMCPServer(
		"Mailvec Embedding Store",
		"0.1.0",
	)

	mcp.RegisterTools(server, engine)

	if !quiet {
		log.Println("mailvec MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
