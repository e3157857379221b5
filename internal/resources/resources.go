// Package resources implements MCP resource handlers for specnav.
//
// Resources provide read-only data the host can consume for context,
// addressed by URI (specnav://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/specnav/specnav/internal/config"
)

// Handler manages specnav resource endpoints.
type Handler struct {
	store config.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store config.Store) *Handler {
	return &Handler{store: store}
}

// KeywordsResource returns the MCP resource definition for the active
// classifier keyword sets.
func (h *Handler) KeywordsResource() mcp.Resource {
	return mcp.NewResource(
		"specnav://keywords",
		"Section Keyword Sets",
		mcp.WithResourceDescription("The keyword sets that decide which sections belong to each view mode"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleKeywords returns the effective keyword sets as JSON, with any
// workspace overrides from specnav.json applied.
func (h *Handler) HandleKeywords(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	root, err := findRoot()
	if err != nil {
		return nil, fmt.Errorf("finding workspace root: %w", err)
	}

	cfg, err := h.store.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	data, err := json.MarshalIndent(cfg.ClassifierKeywords(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling keywords: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// findRoot walks up from cwd looking for specnav.json.
func findRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		if _, err := os.Stat(config.ConfigPath(current)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir, nil
		}
		current = parent
	}
}
