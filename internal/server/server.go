// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on
// abstractions. No parsing logic lives here — only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/prompts"
	"github.com/specnav/specnav/internal/resources"
	"github.com/specnav/specnav/internal/snapshot"
	"github.com/specnav/specnav/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the snapshot store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if snapshot init failed.
func New() (*server.MCPServer, func(), error) {
	store := config.NewFileStore()

	s := server.NewMCPServer(
		"specnav",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register outline tools ---

	outlineTool := tools.NewOutlineTool(store)
	s.AddTool(outlineTool.Definition(), outlineTool.Handle)

	sectionsTool := tools.NewSectionsTool(store)
	s.AddTool(sectionsTool.Definition(), sectionsTool.Handle)

	// --- Register snapshot-backed tools ---
	//
	// Snapshots are an independent subsystem: if SQLite fails to open,
	// outline tools keep working. spec_status handles a nil store by
	// skipping recording; spec_history is only registered when the
	// store is available.

	cleanup := noop
	snaps, snapErr := snapshot.New(snapshot.DefaultConfig())
	if snapErr != nil {
		log.Printf("WARNING: snapshot subsystem disabled: %v", snapErr)
		snaps = nil
	} else {
		cleanup = func() {
			if err := snaps.Close(); err != nil {
				log.Printf("WARNING: snapshot store close: %v", err)
			}
		}
	}

	statusTool := tools.NewStatusTool(store, snaps)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	if snaps != nil {
		historyTool := tools.NewHistoryTool(snaps)
		s.AddTool(historyTool.Definition(), historyTool.Handle)
	}

	// --- Register prompts ---

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store)
	s.AddResource(resourceHandler.KeywordsResource(), resourceHandler.HandleKeywords)

	return s, cleanup, nil
}

// noop is the default cleanup when the snapshot store isn't open.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use specnav effectively.
func serverInstructions() string {
	return `You have access to specnav, a spec document outline server.

specnav parses spec-driven development Markdown documents (requirements,
task breakdowns, review checklists) into a navigable three-level outline:
sections (##), subsections (###), and list items. Items may carry a
checkbox status: [ ] pending, [~] in progress, [x] completed.

## View Modes
Every parse runs under a view that filters top-level sections by keyword:
- all: every section
- requirements: sections about users, scenarios, requirements, tests
- implementations: sections about reviews, checklists, tasks, implementation

Keyword sets live in specnav.json at the workspace root and can be
extended per workspace — new views are configuration, not code.

## Tools
- spec_outline: full outline of a document for a view (tree or JSON).
  Each node carries its source line for navigation.
- spec_sections: just the qualifying ## sections with line numbers.
- spec_status: checkbox completion summary for a document. Use
  record=true after meaningful progress to persist a snapshot.
- spec_history: recorded snapshots for a document, newest first, with
  deltas — use it to show progress over time.

## Conventions
- Paths are workspace-relative. specnav.json's default_doc is used when
  no path is given.
- Items only exist under a ### subsection; a checkbox directly under a
  ## section is not tracked. Keep task lists under subsections.
- Only lowercase [x] marks completion — [X] is left as label text.
- Duplicate labels under the same subsection collapse to the first
  occurrence; make task labels distinct if they must be tracked apart.

## Typical Flow
1. spec_sections to orient in a large document
2. spec_outline view=implementations to see the work breakdown
3. As tasks complete, edit the document checkboxes, then spec_status
   with record=true
4. spec_history to report progress over time`
}
