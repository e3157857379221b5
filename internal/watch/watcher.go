// Package watch re-parses a spec document when it changes on disk.
//
// The parser core provides no debouncing — that responsibility sits with
// the caller, and this package is that caller. Editor saves often arrive
// as bursts (write + rename + chmod), so events are debounced before one
// re-parse runs. An unreadable document at trigger time produces no
// callback at all: consumers keep showing the previous outline until a
// successful re-parse replaces it.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/specnav/specnav/internal/document"
	"github.com/specnav/specnav/internal/outline"
)

const defaultDebounce = 500 * time.Millisecond

// Config holds watcher settings.
type Config struct {
	// DocPath is the document to watch.
	DocPath string
	// Mode is the view mode used for re-parses.
	Mode outline.ViewMode
	// OnUpdate receives the fresh node list after each successful re-parse.
	OnUpdate func([]outline.Node)
	// Debounce overrides the settle delay (default 500ms).
	Debounce time.Duration
}

// Watcher watches one document and pushes re-parsed outlines to a callback.
type Watcher struct {
	cfg      Config
	parser   *outline.Parser
	provider *document.FileProvider
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// New creates a watcher for cfg.DocPath. The document's directory is
// watched rather than the file itself — editors commonly replace files
// via rename, which would silently detach a direct file watch.
func New(cfg Config, parser *outline.Parser) (*Watcher, error) {
	if cfg.OnUpdate == nil {
		return nil, fmt.Errorf("watch: OnUpdate callback is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(cfg.DocPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(cfg.DocPath), err)
	}

	return &Watcher{
		cfg:      cfg,
		parser:   parser,
		provider: document.NewFileProvider(cfg.DocPath),
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. The event loop runs until ctx is canceled or
// Stop is called. Calling Start more than once is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	go w.loop(ctx)
}

// Stop shuts the watcher down and waits for the event loop to exit.
// Safe to call more than once, and before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.started.Load() {
			<-w.doneCh
		}
		_ = w.fsw.Close()
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Restart the settle timer on every relevant event.
			if debounce == nil {
				debounce = time.NewTimer(w.cfg.Debounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.cfg.Debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.reparse()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event still triggers.
		}
	}
}

// relevant filters directory events down to mutations of the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.cfg.DocPath) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// reparse reads the full document and invokes the callback. An absent or
// unreadable document degrades to "no change" — no callback.
func (w *Watcher) reparse() {
	content, ok := w.provider.Content()
	if !ok {
		return
	}
	w.cfg.OnUpdate(w.parser.Parse(content, w.cfg.Mode))
}
