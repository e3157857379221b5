// Package outline parses spec-driven development Markdown documents into a
// flat, ordered list of typed nodes: sections (##), subsections (###), and
// leaf list items, some of which carry a checkbox-derived completion status.
//
// The package is split by concern:
//   - types: shared node/status/view-mode definitions
//   - classifier: decides which sections belong to a view
//   - status: checkbox detection and stripping
//   - parser: the line-scanning state machine
//
// Parsing is a pure function over text. A Parser holds no state between
// calls and is safe for concurrent use.
package outline

import "fmt"

// --- Node kinds ---

// Kind identifies the hierarchy level of a parsed node.
type Kind string

const (
	KindSection    Kind = "section"    // level-2 heading (##)
	KindSubsection Kind = "subsection" // level-3 heading (###)
	KindItem       Kind = "item"       // list entry under a subsection
)

// --- Completion status ---

// Status is the tri-state completion value derived from checkbox syntax.
// The zero value means the node carries no status.
type Status string

const (
	StatusNone       Status = ""
	StatusPending    Status = "pending"     // [ ]
	StatusInProgress Status = "in_progress" // [~]
	StatusCompleted  Status = "completed"   // [x]
)

// --- Node ---

// Node is one entry in a parse result. Nodes appear in source order and
// reference their enclosing label via Parent: a subsection's parent is its
// section, an item's parent is its subsection. Line is the zero-based
// source line the node was found on, for navigation back into the document.
type Node struct {
	Label  string `json:"label"`
	Line   int    `json:"line"`
	Kind   Kind   `json:"kind"`
	Parent string `json:"parent,omitempty"`
	Status Status `json:"status,omitempty"`
}

// --- View modes ---

// ViewMode selects the section filtering policy for a parse pass.
type ViewMode string

const (
	ViewAll             ViewMode = "all"
	ViewRequirements    ViewMode = "requirements"
	ViewImplementations ViewMode = "implementations"
)

// ParseViewMode validates a view mode string. Empty input defaults to "all".
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewAll, ViewRequirements, ViewImplementations:
		return ViewMode(s), nil
	case "":
		return ViewAll, nil
	}
	return "", fmt.Errorf("invalid view mode %q: must be one of: all, requirements, implementations", s)
}

// ViewModeValues returns the enum values for MCP tool definitions.
func ViewModeValues() []string {
	return []string{string(ViewAll), string(ViewRequirements), string(ViewImplementations)}
}

// TracksStatus reports whether items parsed under this view record their
// checkbox status. Only the implementations view tracks status; the other
// views strip checkbox syntax without classifying it.
func (m ViewMode) TracksStatus() bool {
	return m == ViewImplementations
}
