package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
)

// OutlineTool handles the spec_outline MCP tool: parse a spec document
// and return its three-level outline for a view mode.
type OutlineTool struct {
	store config.Store
}

// NewOutlineTool creates an OutlineTool with its dependencies.
func NewOutlineTool(store config.Store) *OutlineTool {
	return &OutlineTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *OutlineTool) Definition() mcp.Tool {
	return mcp.NewTool("spec_outline",
		mcp.WithDescription(
			"Parse a spec Markdown document into its section/subsection/item outline. "+
				"Sections are ## headings, subsections ###, items are list entries "+
				"(-, *, +, numbered, or bare checkboxes). The view filters which "+
				"sections appear; the implementations view also tracks checkbox status.",
		),
		mcp.WithString("path",
			mcp.Description("Workspace-relative path to the document. Falls back to default_doc from specnav.json."),
		),
		mcp.WithString("view",
			mcp.Description("Section filter: 'all' (default), 'requirements', or 'implementations'."),
			mcp.Enum(outline.ViewModeValues()...),
		),
		mcp.WithString("format",
			mcp.Description("'tree' (default) for an indented outline, 'json' for the raw node list."),
			mcp.Enum("tree", "json"),
		),
	)
}

// Handle processes the spec_outline tool call.
func (t *OutlineTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := outline.ParseViewMode(req.GetString("view", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root, cfg, parser, err := loadParser(t.store)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, _, err := docPath(root, req.GetString("path", ""), cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, present := document.NewFileProvider(path).Content()
	if !present {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %s", path)), nil
	}

	nodes := parser.Parse(content, mode)

	if req.GetString("format", "tree") == "json" {
		data, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling outline: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	if len(nodes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections match the %q view in %s.", mode, path)), nil
	}

	header := fmt.Sprintf("# Outline (%s view)\n\n", mode)
	return mcp.NewToolResultText(header + renderTree(nodes)), nil
}
