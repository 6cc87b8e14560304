// ABOUTME: MCP tool handler implementations for the mailvec server
// ABOUTME: Thin adapters translating tool calls into engine operations
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/mailvec/internal/models"
	"github.com/harper/mailvec/internal/search"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine *search.Engine
}

// StoreEmbedding handles the store_embedding tool
func (h *Handlers) StoreEmbedding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messageID, err := request.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError("message_id argument is required and must be a string"), nil
	}

	msg := &models.EmailMessage{
		ID:       messageID,
		Subject:  request.GetString("subject", ""),
		From:     request.GetString("sender", ""),
		Body:     request.GetString("body", ""),
		ThreadID: request.GetString("thread_id", ""),
	}

	if ts := request.GetString("timestamp", ""); ts != "" {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid timestamp %q: %v", ts, err)), nil
		}
		msg.Timestamp = parsed
	}

	category, err := models.ParseCategory(request.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	recordID, err := h.engine.StoreMessage(ctx, msg,
		request.GetString("text", ""), category, request.GetString("priority", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"record_id":  recordID,
		"message_id": messageID,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchSimilar handles the search_similar tool
func (h *Handlers) SearchSimilar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryText, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	category, err := models.ParseCategory(request.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := models.SearchQuery{
		Text:      queryText,
		Limit:     request.GetInt("limit", models.DefaultSearchLimit),
		Threshold: request.GetFloat("threshold", models.DefaultSearchThreshold),
		Category:  category,
		Sender:    request.GetString("sender", ""),
	}

	dateStart := request.GetString("date_start", "")
	dateEnd := request.GetString("date_end", "")
	if dateStart != "" || dateEnd != "" {
		dr, err := parseDateRange(dateStart, dateEnd)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		query.DateRange = dr
	}

	result, err := h.engine.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetStats handles the get_stats tool
func (h *Handlers) GetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.engine.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	responseJSON, err := json.Marshal(stats)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DeleteMessage handles the delete_message tool
func (h *Handlers) DeleteMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messageID, err := request.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError("message_id argument is required and must be a string"), nil
	}

	if err := h.engine.DeleteMessage(messageID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(`{"deleted":"%s"}`, messageID)), nil
}

// ClearStore handles the clear_store tool
func (h *Handlers) ClearStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !request.GetBool("confirm", false) {
		return mcp.NewToolResultError("confirm must be true to clear the store"), nil
	}

	if err := h.engine.Reset(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clear failed: %v", err)), nil
	}

	return mcp.NewToolResultText(`{"cleared":true}`), nil
}

// parseDateRange builds an inclusive date range from RFC 3339 bounds. A
// missing start means "from the beginning"; a missing end means "until now".
func parseDateRange(start, end string) (*models.DateRange, error) {
	dr := &models.DateRange{End: time.Now()}

	if start != "" {
		parsed, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return nil, fmt.Errorf("invalid date_start %q: %v", start, err)
		}
		dr.Start = parsed
	}
	if end != "" {
		parsed, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return nil, fmt.Errorf("invalid date_end %q: %v", end, err)
		}
		dr.End = parsed
	}
	return dr, nil
}
