// specnav: Spec Document Outline MCP Server
//
// A universal MCP server that integrates with any AI coding tool
// (Claude Code, OpenCode, Gemini CLI, Codex, Cursor, VS Code Copilot)
// to navigate spec-driven development documents: outlines, task
// checklists, and completion tracking.
//
// Usage:
//
//	specnav serve                  # Start MCP server (stdio transport)
//	specnav outline <file> [view]  # Print a document outline locally
//	specnav watch <file> [view]    # Watch a document, reprint on change
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/specnav/specnav/internal/config"
	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
	specserver "github.com/specnav/specnav/internal/server"
	"github.com/specnav/specnav/internal/watch"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "outline":
		if err := runOutline(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("specnav v%s\n", specserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	s, cleanup, err := specserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	return server.ServeStdio(s)
}

// runOutline prints a document's outline to stdout without starting the
// server. Useful for checking what a view will contain before pointing
// an AI tool at it.
func runOutline(args []string) error {
	path, mode, parser, err := localSetup(args)
	if err != nil {
		return err
	}

	content, present := document.NewFileProvider(path).Content()
	if !present {
		return fmt.Errorf("document not found: %s", path)
	}

	printNodes(parser.Parse(content, mode), mode)
	return nil
}

// runWatch reprints the outline whenever the document changes on disk,
// until interrupted.
func runWatch(args []string) error {
	path, mode, parser, err := localSetup(args)
	if err != nil {
		return err
	}

	// Print the initial state before waiting for changes.
	content, present := document.NewFileProvider(path).Content()
	if !present {
		return fmt.Errorf("document not found: %s", path)
	}
	printNodes(parser.Parse(content, mode), mode)

	w, err := watch.New(watch.Config{
		DocPath: path,
		Mode:    mode,
		OnUpdate: func(nodes []outline.Node) {
			fmt.Printf("\n--- %s updated ---\n", filepath.Base(path))
			printNodes(nodes, mode)
		},
	}, parser)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	w.Start(ctx)
	defer w.Stop()
	<-ctx.Done()
	return nil
}

// localSetup resolves the document path, view mode, and a parser using
// the workspace config, shared by the outline and watch commands.
func localSetup(args []string) (string, outline.ViewMode, *outline.Parser, error) {
	if len(args) < 1 {
		return "", "", nil, fmt.Errorf("usage: specnav outline <file> [all|requirements|implementations]")
	}

	view := ""
	if len(args) > 1 {
		view = args[1]
	}
	mode, err := outline.ParseViewMode(view)
	if err != nil {
		return "", "", nil, err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", nil, fmt.Errorf("resolving path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.NewFileStore().Load(cwd)
	if err != nil {
		return "", "", nil, fmt.Errorf("loading config: %w", err)
	}

	parser := outline.NewParser(outline.NewClassifier(cfg.ClassifierKeywords()))
	return path, mode, parser, nil
}

func printNodes(nodes []outline.Node, mode outline.ViewMode) {
	if len(nodes) == 0 {
		fmt.Printf("No sections match the %q view.\n", mode)
		return
	}

	sum := outline.Summarize(nodes)
	for _, n := range nodes {
		switch n.Kind {
		case outline.KindSection:
			fmt.Printf("%s  (line %d)\n", n.Label, n.Line+1)
		case outline.KindSubsection:
			fmt.Printf("  %s\n", n.Label)
		case outline.KindItem:
			marker := "•"
			switch n.Status {
			case outline.StatusCompleted:
				marker = "✅"
			case outline.StatusInProgress:
				marker = "🔄"
			case outline.StatusPending:
				marker = "⬜"
			}
			fmt.Printf("    %s %s\n", marker, n.Label)
		}
	}
	if sum.Tracked() > 0 {
		fmt.Printf("\n%d%% complete (%d/%d)\n", sum.Percent(), sum.Completed, sum.Tracked())
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `specnav v%s — Spec Document Outline MCP Server

Usage:
  specnav serve                  Start the MCP server (stdio transport)
  specnav outline <file> [view]  Print a document outline locally
  specnav watch <file> [view]    Watch a document, reprint on change

Views: all (default), requirements, implementations

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "specnav": {
        "command": "specnav",
        "args": ["serve"]
      }
    }
  }

  Keyword sets and the default document live in specnav.json at the
  workspace root.
`, specserver.Version)
}
