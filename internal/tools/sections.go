package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
)

// SectionsTool handles the spec_sections MCP tool: list only the
// top-level sections a view accepts, with their source lines.
type SectionsTool struct {
	store config.Store
}

// NewSectionsTool creates a SectionsTool with its dependencies.
func NewSectionsTool(store config.Store) *SectionsTool {
	return &SectionsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SectionsTool) Definition() mcp.Tool {
	return mcp.NewTool("spec_sections",
		mcp.WithDescription(
			"List the ## sections of a spec document that qualify for a view, "+
				"with their line numbers. Useful for navigating to a section "+
				"without fetching the whole outline.",
		),
		mcp.WithString("path",
			mcp.Description("Workspace-relative path to the document. Falls back to default_doc from specnav.json."),
		),
		mcp.WithString("view",
			mcp.Description("Section filter: 'all' (default), 'requirements', or 'implementations'."),
			mcp.Enum(outline.ViewModeValues()...),
		),
	)
}

// Handle processes the spec_sections tool call.
func (t *SectionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	var sb strings.Builder
	count := 0
	for _, n := range parser.Parse(content, mode) {
		if n.Kind != outline.KindSection {
			continue
		}
		count++
		fmt.Fprintf(&sb, "- %s (line %d)\n", n.Label, n.Line+1)
	}

	if count == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections match the %q view.", mode)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("# Sections (%s view)\n\n%s", mode, sb.String())), nil
}
