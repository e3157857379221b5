package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
	"github.com/specnav/specnav/internal/snapshot"
)

// StatusTool handles the spec_status MCP tool: aggregate checkbox statuses
// from the implementations view into a completion summary, optionally
// recording a snapshot for later comparison.
//
// The snapshot store is optional — a nil store disables recording but the
// summary itself always works.
type StatusTool struct {
	store config.Store
	snaps *snapshot.Store
}

// NewStatusTool creates a StatusTool with its dependencies. snaps may be nil.
func NewStatusTool(store config.Store, snaps *snapshot.Store) *StatusTool {
	return &StatusTool{store: store, snaps: snaps}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("spec_status",
		mcp.WithDescription(
			"Summarize checkbox completion for a spec document: total, completed, "+
				"in-progress and pending counts plus a per-subsection breakdown. "+
				"Parses in the implementations view. Set record=true to persist "+
				"a snapshot for spec_history.",
		),
		mcp.WithString("path",
			mcp.Description("Workspace-relative path to the document. Falls back to default_doc from specnav.json."),
		),
		mcp.WithBoolean("record",
			mcp.Description("Persist this summary as a snapshot (default false)."),
		),
	)
}

// Handle processes the spec_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, cfg, parser, err := loadParser(t.store)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, rel, err := docPath(root, req.GetString("path", ""), cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, present := document.NewFileProvider(path).Content()
	if !present {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %s", path)), nil
	}

	nodes := parser.Parse(content, outline.ViewImplementations)
	sum := outline.Summarize(nodes)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Status: %s\n\n", rel)
	fmt.Fprintf(&sb, "**Completion:** %d%% (%d of %d tracked items)\n\n", sum.Percent(), sum.Completed, sum.Tracked())
	fmt.Fprintf(&sb, "- ✅ Completed: %d\n", sum.Completed)
	fmt.Fprintf(&sb, "- 🔄 In progress: %d\n", sum.InProgress)
	fmt.Fprintf(&sb, "- ⬜ Pending: %d\n", sum.Pending)
	fmt.Fprintf(&sb, "- Sections: %d | Subsections: %d | Items: %d\n", sum.Sections, sum.Subsections, sum.Items)

	if breakdown := subsectionBreakdown(nodes); breakdown != "" {
		sb.WriteString("\n## By Subsection\n\n")
		sb.WriteString(breakdown)
	}

	if req.GetBool("record", false) {
		if t.snaps == nil {
			sb.WriteString("\n_Snapshot store unavailable — summary not recorded._\n")
		} else {
			id, err := t.snaps.Record(rel, outline.ViewImplementations, sum)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("recording snapshot: %v", err)), nil
			}
			fmt.Fprintf(&sb, "\n_Snapshot #%d recorded._\n", id)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// subsectionBreakdown renders per-subsection completion lines.
func subsectionBreakdown(nodes []outline.Node) string {
	type bucket struct {
		label              string
		completed, tracked int
	}
	var order []string
	buckets := make(map[string]*bucket)

	for _, n := range nodes {
		switch n.Kind {
		case outline.KindSubsection:
			if _, ok := buckets[n.Label]; !ok {
				buckets[n.Label] = &bucket{label: n.Label}
				order = append(order, n.Label)
			}
		case outline.KindItem:
			b, ok := buckets[n.Parent]
			if !ok || n.Status == outline.StatusNone {
				continue
			}
			b.tracked++
			if n.Status == outline.StatusCompleted {
				b.completed++
			}
		}
	}

	var sb strings.Builder
	for _, label := range order {
		b := buckets[label]
		if b.tracked == 0 {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %d/%d\n", b.label, b.completed, b.tracked)
	}
	return sb.String()
}
