package outline

import "strings"

// --- Section classification ---
//
// The classifier decides, heading by heading, whether a level-2 section
// belongs to a view. Keyword sets are data, not code: new view modes are
// added by supplying a new keyword list, never by branching in the parser.

// Keywords maps a view mode to the lowercase substrings that qualify a
// section heading for that view.
type Keywords map[ViewMode][]string

// DefaultKeywords returns the built-in keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		ViewRequirements:    {"user", "scenario", "requirement", "test", "functional"},
		ViewImplementations: {"review", "acceptance", "checklist", "implementation", "development", "task", "requirement"},
	}
}

// Classifier is a stateless heading predicate over a set of keyword lists.
type Classifier struct {
	keywords Keywords
}

// NewClassifier creates a Classifier. A nil keyword map uses the defaults.
func NewClassifier(kw Keywords) *Classifier {
	if kw == nil {
		kw = DefaultKeywords()
	}
	return &Classifier{keywords: kw}
}

// Keywords returns the keyword list for a view mode.
func (c *Classifier) Keywords(mode ViewMode) []string {
	return c.keywords[mode]
}

// IsRelevant reports whether a section heading qualifies for the view.
// Matching is case-insensitive substring containment, not whole-word:
// "Testing" qualifies for requirements because it contains "test".
// The "all" view accepts every heading.
func (c *Classifier) IsRelevant(heading string, mode ViewMode) bool {
	if mode == ViewAll {
		return true
	}
	lowered := strings.ToLower(heading)
	for _, kw := range c.keywords[mode] {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
