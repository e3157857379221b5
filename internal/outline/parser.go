package outline

import (
	"regexp"
	"strings"
)

// --- Line patterns ---
//
// Headings are anchored at the line start — no leading whitespace.
// List items tolerate indentation; indentation depth does NOT create
// deeper hierarchy, every matching list line under a subsection lands
// at the same item level.
var (
	// sectionPattern matches "## text". It cannot match "### text"
	// because \s+ rejects the third '#'.
	sectionPattern = regexp.MustCompile(`^##\s+(.+)$`)

	// subsectionPattern matches "### text". Deeper headings (####+)
	// fail the same way and are treated as inert prose.
	subsectionPattern = regexp.MustCompile(`^###\s+(.+)$`)

	// bulletPattern matches "-", "*", "+" bullets and "1." ordered
	// markers, stripping exactly one marker plus following whitespace.
	bulletPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+(.+)$`)
)

// parseState drives the line-scanning state machine.
type parseState int

const (
	stateSeeking      parseState = iota // no active section yet
	stateInSection                      // inside an active section, before any subsection
	stateInSubsection                   // inside a subsection — items are recognized
)

// Parser converts document text into an ordered, deduplicated node list.
// All working state lives in the Parse call, so one Parser can serve
// concurrent callers.
type Parser struct {
	classifier *Classifier
}

// NewParser creates a Parser. A nil classifier uses the default keyword sets.
func NewParser(c *Classifier) *Parser {
	if c == nil {
		c = NewClassifier(nil)
	}
	return &Parser{classifier: c}
}

// Classifier returns the parser's section classifier.
func (p *Parser) Classifier() *Classifier {
	return p.classifier
}

// SplitLines normalizes CRLF line endings and splits document text into lines.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Parse runs ParseLines over the split document text.
func (p *Parser) Parse(text string, mode ViewMode) []Node {
	return p.ParseLines(SplitLines(text), mode)
}

// ParseLines walks the document in a single left-to-right pass and emits
// nodes in source order. Sections the classifier rejects deactivate
// everything until the next qualifying section; items appearing before any
// subsection are dropped, never attached to the section directly.
//
// Deduplication is by cleaned label: a section label seen twice, a
// (section, subsection) pair seen twice, or a (section, subsection, item)
// triple seen twice emits only its first occurrence. Two source lines that
// normalize to the same label deliberately collapse into one node — this
// keeps reparsing idempotent, at the cost of literal line fidelity for
// visually distinct duplicates.
func (p *Parser) ParseLines(lines []string, mode ViewMode) []Node {
	var (
		nodes      []Node
		state      = stateSeeking
		section    string
		subsection string

		seenSections    = make(map[string]bool)
		seenSubsections = make(map[string]bool)
		seenItems       = make(map[string]bool)
	)

	for i, line := range lines {
		// Section boundaries are always evaluated, even while inactive —
		// a qualifying heading reopens recognition.
		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			label := strings.TrimSpace(m[1])
			if p.classifier.IsRelevant(label, mode) {
				state = stateInSection
				section = label
				subsection = ""
				if !seenSections[label] {
					seenSections[label] = true
					nodes = append(nodes, Node{Label: label, Line: i, Kind: KindSection})
				}
			} else {
				state = stateSeeking
				section = ""
				subsection = ""
			}
			continue
		}

		if state == stateSeeking {
			continue
		}

		if m := subsectionPattern.FindStringSubmatch(line); m != nil {
			label := strings.TrimSpace(m[1])
			state = stateInSubsection
			subsection = label
			key := dedupKey(section, label)
			if !seenSubsections[key] {
				seenSubsections[key] = true
				nodes = append(nodes, Node{Label: label, Line: i, Kind: KindSubsection, Parent: section})
			}
			continue
		}

		if state != stateInSubsection {
			continue
		}

		raw, ok := matchItem(line)
		if !ok {
			continue
		}

		var label string
		var status Status
		if mode.TracksStatus() {
			label, status = ExtractStatus(raw)
		} else {
			label = StripCheckbox(raw)
		}
		if label == "" {
			continue
		}

		key := dedupKey(section, subsection, label)
		if seenItems[key] {
			continue
		}
		seenItems[key] = true
		nodes = append(nodes, Node{Label: label, Line: i, Kind: KindItem, Parent: subsection, Status: status})
	}

	return nodes
}

// matchItem reports whether the line is a list item and returns the raw
// item text with exactly one leading marker stripped. A line whose sole
// marker is a bare checkbox (no bullet) keeps its checkbox token so the
// status extractor can classify it.
func matchItem(line string) (string, bool) {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	trimmed := strings.TrimLeft(line, " \t")
	if hasCheckboxPrefix(trimmed) {
		return trimmed, true
	}
	return "", false
}

// dedupKey joins label path parts with NUL so labels containing separators
// can't collide across hierarchy levels.
func dedupKey(parts ...string) string {
	return strings.Join(parts, "\x00")
}
