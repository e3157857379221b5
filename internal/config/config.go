// Package config handles workspace configuration for specnav.
//
// The one thing the parser refuses to hardcode is the classifier keyword
// sets — new view modes are configuration, not code paths. A workspace can
// override or extend the defaults with a specnav.json file at its root;
// everything else falls back to built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specnav/specnav/internal/outline"
)

// ConfigFile is the workspace config filename, looked up at the root.
const ConfigFile = "specnav.json"

// Config is the persisted workspace configuration.
type Config struct {
	// Keywords maps a view mode name to the lowercase substrings that
	// qualify a section heading for that view. Modes absent from the map
	// keep their built-in defaults; the "all" view ignores keywords.
	Keywords map[string][]string `json:"keywords,omitempty"`

	// DefaultDoc is the workspace-relative document tools fall back to
	// when no path is given.
	DefaultDoc string `json:"default_doc,omitempty"`
}

// Default returns a config carrying the built-in keyword sets.
func Default() *Config {
	kw := make(map[string][]string)
	for mode, words := range outline.DefaultKeywords() {
		kw[string(mode)] = words
	}
	return &Config{Keywords: kw}
}

// ClassifierKeywords converts the config's keyword map into the parser's
// representation, filling in defaults for modes the config doesn't mention.
func (c *Config) ClassifierKeywords() outline.Keywords {
	kw := outline.DefaultKeywords()
	for mode, words := range c.Keywords {
		kw[outline.ViewMode(mode)] = words
	}
	return kw
}

// ConfigPath returns the config file location for a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// --- Store ---

// Store abstracts config persistence so tools depend on the interface,
// not the filesystem.
type Store interface {
	Load(root string) (*Config, error)
	Save(root string, cfg *Config) error
}

// FileStore persists configuration as JSON at the workspace root.
type FileStore struct{}

// NewFileStore creates a filesystem-backed config store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads the workspace config. A missing file is not an error — the
// defaults apply. A present but malformed file is an error: silently
// ignoring a broken config would be confusing.
func (s *FileStore) Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	return &cfg, nil
}

// Save writes the config as indented JSON.
func (s *FileStore) Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(root), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
