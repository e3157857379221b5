// Package document supplies spec document content to the outline parser.
//
// The parser treats a document as pure data: a Provider either has content
// or it doesn't. All file I/O and path handling lives here, so the parser
// itself never touches the filesystem.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specnav/specnav/internal/outline"
)

// Provider exposes document content or reports it absent.
// An absent document is not an error — callers that need to distinguish
// "missing" from "empty" use the second return value.
type Provider interface {
	Content() (string, bool)
}

// FileProvider reads a document from disk on every call. Any read error
// (missing file, permissions, directory) reports the document absent.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider for the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Content reads the full file. The whole content is read before parsing
// so a re-parse never observes a partially written document through this
// provider's snapshot.
func (p *FileProvider) Content() (string, bool) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Resolve joins a workspace-relative path against the workspace root and
// rejects paths that escape it.
func Resolve(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be workspace-relative", rel)
	}
	joined := filepath.Join(root, rel)
	cleanRoot := filepath.Clean(root)
	if joined != cleanRoot && !strings.HasPrefix(joined, cleanRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace root", rel)
	}
	return joined, nil
}

// Outline parses the provider's document. An absent document
// short-circuits to an empty node list — the parser never sees it.
func Outline(p Provider, parser *outline.Parser, mode outline.ViewMode) []outline.Node {
	content, ok := p.Content()
	if !ok {
		return nil
	}
	return parser.Parse(content, mode)
}
