package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/specnav/specnav/internal/snapshot"
)

// HistoryTool handles the spec_history MCP tool: show recorded completion
// snapshots for a document, newest first, with deltas between them.
// Only registered when the snapshot store is available.
type HistoryTool struct {
	snaps *snapshot.Store
}

// NewHistoryTool creates a HistoryTool with the given snapshot store.
func NewHistoryTool(snaps *snapshot.Store) *HistoryTool {
	return &HistoryTool{snaps: snaps}
}

// Definition returns the MCP tool definition for registration.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("spec_history",
		mcp.WithDescription(
			"Show recorded completion snapshots for a spec document, newest first. "+
				"Snapshots are created by spec_status with record=true.",
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Workspace-relative path the snapshots were recorded under."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum snapshots to return (default 10)."),
		),
	)
}

// Handle processes the spec_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rel := req.GetString("path", "")
	if rel == "" {
		return mcp.NewToolResultError("'path' is required"), nil
	}
	limit := req.GetInt("limit", 10)

	snaps, err := t.snaps.History(rel, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading history: %v", err)), nil
	}
	if len(snaps) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No snapshots recorded for %q. Use spec_status with record=true to create one.", rel,
		)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# History: %s\n\n", rel)
	for i, snap := range snaps {
		sum := snap.Summary()
		fmt.Fprintf(&sb, "- %s — %d%% (%d/%d completed)",
			snap.CreatedAt, sum.Percent(), sum.Completed, sum.Tracked())
		if i+1 < len(snaps) {
			delta := sum.Completed - snaps[i+1].Completed
			if delta != 0 {
				fmt.Fprintf(&sb, " [%+d]", delta)
			}
		}
		sb.WriteByte('\n')
	}

	return mcp.NewToolResultText(sb.String()), nil
}
