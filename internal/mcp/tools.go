// ABOUTME: MCP tool definitions and registration for the mailvec server
// ABOUTME: Defines JSON schemas for the store/search/stats/delete/clear tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/mailvec/internal/search"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *search.Engine) *Handlers {
	handlers := &Handlers{engine: engine}

	// 1. store_embedding - Embed and persist a message
	server.AddTool(mcp.Tool{
		Name:        "store_embedding",
		Description: "Embed an email message and persist it for similarity search. Returns the new record id. Storing the same message again appends another record.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Message identifier from the mail source",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Message subject",
				},
				"sender": map[string]interface{}{
					"type":        "string",
					"description": "Sender address or display name",
				},
				"body": map[string]interface{}{
					"type":        "string",
					"description": "Message body",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to embed instead of subject+body",
				},
				"timestamp": map[string]interface{}{
					"type":        "string",
					"description": "Message timestamp in RFC 3339 format",
				},
				"thread_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional thread identifier",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "One of: work, personal, finance, travel, newsletter, other",
				},
				"priority": map[string]interface{}{
					"type":        "string",
					"description": "Optional priority label",
				},
			},
			Required: []string{"message_id"},
		},
	}, handlers.StoreEmbedding)

	// 2. search_similar - Similarity search over stored embeddings
	server.AddTool(mcp.Tool{
		Name:        "search_similar",
		Description: "Search stored email embeddings by semantic similarity with optional category, sender, and date filters.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search query",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 10)",
					"default":     10,
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum similarity in [0,1] (default: 0.3)",
					"default":     0.3,
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Exact category filter",
				},
				"sender": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive sender substring filter",
				},
				"date_start": map[string]interface{}{
					"type":        "string",
					"description": "Inclusive range start, RFC 3339",
				},
				"date_end": map[string]interface{}{
					"type":        "string",
					"description": "Inclusive range end, RFC 3339",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchSimilar)

	// 3. get_stats - Storage statistics
	server.AddTool(mcp.Tool{
		Name:        "get_stats",
		Description: "Get embedding store statistics: record count, per-category counts, timestamp range, approximate storage size.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetStats)

	// 4. delete_message - Cascade delete by message id
	server.AddTool(mcp.Tool{
		Name:        "delete_message",
		Description: "Delete every embedding record for a message id. Deleting an unknown message id is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message_id": map[string]interface{}{
					"type":        "string",
					"description": "Message identifier to delete records for",
				},
			},
			Required: []string{"message_id"},
		},
	}, handlers.DeleteMessage)

	// 5. clear_store - Remove all records
	server.AddTool(mcp.Tool{
		Name:        "clear_store",
		Description: "Remove all embedding records and invalidate the search cache. Requires confirm=true.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"confirm": map[string]interface{}{
					"type":        "boolean",
					"description": "Must be true to clear the store",
				},
			},
			Required: []string{"confirm"},
		},
	}, handlers.ClearStore)

	return handlers
}
