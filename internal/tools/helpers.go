// Package tools implements the MCP tool handlers for specnav.
//
// Each tool is a struct receiving its dependencies at construction and
// exposing Definition()/Handle() for registration — one file per tool.
// Tools depend on the config.Store interface and the outline package;
// none of them touch parse state, so handlers are safe to call
// concurrently.
package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
)

// findWorkspaceRoot walks up from the current working directory looking
// for a specnav.json. If none is found, returns cwd — defaults apply.
func findWorkspaceRoot() (string, error) {
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

// loadParser loads the workspace config and builds a parser with its
// keyword sets. Returns the root, the config, and the parser.
func loadParser(store config.Store) (string, *config.Config, *outline.Parser, error) {
	root, err := findWorkspaceRoot()
	if err != nil {
		return "", nil, nil, err
	}
	cfg, err := store.Load(root)
	if err != nil {
		return "", nil, nil, err
	}
	parser := outline.NewParser(outline.NewClassifier(cfg.ClassifierKeywords()))
	return root, cfg, parser, nil
}

// docPath resolves the tool's path argument against the workspace root,
// falling back to the config's default document. Returns the absolute
// path and the effective workspace-relative path.
func docPath(root, arg string, cfg *config.Config) (abs, rel string, err error) {
	rel = arg
	if rel == "" {
		rel = cfg.DefaultDoc
	}
	if rel == "" {
		return "", "", fmt.Errorf("no document path given and no default_doc configured")
	}
	abs, err = document.Resolve(root, rel)
	return abs, rel, err
}

// statusIndicator returns the display marker for an item's status.
func statusIndicator(status outline.Status) string {
	switch status {
	case outline.StatusCompleted:
		return "✅"
	case outline.StatusInProgress:
		return "🔄"
	case outline.StatusPending:
		return "⬜"
	default:
		return "•"
	}
}

// renderTree formats a node list as an indented outline.
func renderTree(nodes []outline.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case outline.KindSection:
			fmt.Fprintf(&sb, "%s  (line %d)\n", n.Label, n.Line+1)
		case outline.KindSubsection:
			fmt.Fprintf(&sb, "  %s\n", n.Label)
		case outline.KindItem:
			fmt.Fprintf(&sb, "    %s %s\n", statusIndicator(n.Status), n.Label)
		}
	}
	return sb.String()
}
