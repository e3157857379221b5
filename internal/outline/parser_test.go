package outline

import (
	"reflect"
	"testing"
)

// --- Test helpers ---

func nodesOfKind(nodes []Node, kind Kind) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func labels(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}
	return out
}

// --- Scenario coverage ---

func TestParse_ItemsBeforeSubsectionDropped(t *testing.T) {
	p := NewParser(nil)
	nodes := p.Parse("## Requirements\n- [ ] task one\n", ViewImplementations)

	if items := nodesOfKind(nodes, KindItem); len(items) != 0 {
		t.Errorf("expected no items before any subsection, got %v", labels(items))
	}
	sections := nodesOfKind(nodes, KindSection)
	if len(sections) != 1 || sections[0].Label != "Requirements" {
		t.Errorf("sections = %v, want [Requirements]", labels(sections))
	}
}

func TestParse_ChecklistImplementationsView(t *testing.T) {
	input := "## Review & Acceptance Checklist\n" +
		"### Code Quality\n" +
		"- [x] Done thing\n" +
		"- [ ] Pending thing\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewImplementations)

	want := []Node{
		{Label: "Review & Acceptance Checklist", Line: 0, Kind: KindSection},
		{Label: "Code Quality", Line: 1, Kind: KindSubsection, Parent: "Review & Acceptance Checklist"},
		{Label: "Done thing", Line: 2, Kind: KindItem, Parent: "Code Quality", Status: StatusCompleted},
		{Label: "Pending thing", Line: 3, Kind: KindItem, Parent: "Code Quality", Status: StatusPending},
	}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes = %+v\nwant %+v", nodes, want)
	}
}

func TestParse_ChecklistRequirementsViewIsEmpty(t *testing.T) {
	input := "## Review & Acceptance Checklist\n" +
		"### Code Quality\n" +
		"- [x] Done thing\n"

	p := NewParser(nil)
	if nodes := p.Parse(input, ViewRequirements); len(nodes) != 0 {
		t.Errorf("expected empty result for non-requirement heading, got %v", labels(nodes))
	}
}

func TestParse_DuplicateSubsections(t *testing.T) {
	p := NewParser(nil)
	nodes := p.Parse("## S\n### Sub\n### Sub\n- item\n", ViewAll)

	subs := nodesOfKind(nodes, KindSubsection)
	if len(subs) != 1 {
		t.Fatalf("subsections = %v, want exactly one", labels(subs))
	}
	if subs[0].Line != 1 {
		t.Errorf("surviving subsection line = %d, want 1 (first occurrence wins)", subs[0].Line)
	}

	items := nodesOfKind(nodes, KindItem)
	if len(items) != 1 || items[0].Parent != "Sub" {
		t.Errorf("item should attach to the surviving subsection, got %+v", items)
	}
}

func TestParse_MixedMarkers(t *testing.T) {
	input := "## S\n### Sub\n- bullet\n* star\n+ plus\n1. numbered\n[x] bare checked\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewAll), KindItem)

	want := []string{"bullet", "star", "plus", "numbered", "bare checked"}
	if !reflect.DeepEqual(labels(items), want) {
		t.Errorf("item labels = %v, want %v", labels(items), want)
	}
}

// --- Invariants ---

func TestParse_Idempotent(t *testing.T) {
	input := "## Tasks\n### Wave 1\n- [x] a\n- [ ] b\nprose line\n### Wave 2\n1. [~] c\n"

	p := NewParser(nil)
	first := p.Parse(input, ViewImplementations)
	second := p.Parse(input, ViewImplementations)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	input := "## A\n### A1\n- x\n## B\n### B1\n- y\n- z\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].Line >= nodes[i].Line {
			t.Errorf("node %d (line %d) not strictly after node %d (line %d)",
				i, nodes[i].Line, i-1, nodes[i-1].Line)
		}
	}
}

func TestParse_Containment(t *testing.T) {
	input := "## A\n### A1\n- x\n## B\n### B1\n- y\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	sections := make(map[string]bool)
	subsections := make(map[string]bool)
	for _, n := range nodes {
		switch n.Kind {
		case KindSection:
			sections[n.Label] = true
		case KindSubsection:
			if !sections[n.Parent] {
				t.Errorf("subsection %q parent %q not seen earlier as a section", n.Label, n.Parent)
			}
			subsections[n.Label] = true
		case KindItem:
			if !subsections[n.Parent] {
				t.Errorf("item %q parent %q not seen earlier as a subsection", n.Label, n.Parent)
			}
		}
	}
}

func TestParse_DuplicateSectionsCollapse(t *testing.T) {
	input := "## S\n### A\n- one\n## S\n### A\n- two\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	if got := len(nodesOfKind(nodes, KindSection)); got != 1 {
		t.Errorf("sections = %d, want 1", got)
	}
	if got := len(nodesOfKind(nodes, KindSubsection)); got != 1 {
		t.Errorf("subsections = %d, want 1", got)
	}
	// Items differ by label, so both survive under the single A.
	items := nodesOfKind(nodes, KindItem)
	if !reflect.DeepEqual(labels(items), []string{"one", "two"}) {
		t.Errorf("items = %v, want [one two]", labels(items))
	}
}

func TestParse_SameCleanedLabelCollapses(t *testing.T) {
	// Two visually distinct lines normalize to the same label and
	// deliberately collapse into one node (first occurrence wins).
	input := "## S\n### Sub\n- [ ] Ship it\n* [x] Ship it\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewImplementations), KindItem)

	if len(items) != 1 {
		t.Fatalf("items = %v, want exactly one", labels(items))
	}
	if items[0].Status != StatusPending {
		t.Errorf("status = %q, want the first occurrence's pending", items[0].Status)
	}
	if items[0].Line != 2 {
		t.Errorf("line = %d, want 2", items[0].Line)
	}
}

// --- Edge cases ---

func TestParse_HeadingsAnchoredAtLineStart(t *testing.T) {
	input := "  ## Indented\n## Real\n### Sub\n  - indented item\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	sections := nodesOfKind(nodes, KindSection)
	if !reflect.DeepEqual(labels(sections), []string{"Real"}) {
		t.Errorf("sections = %v, want [Real] — indented headings are inert", labels(sections))
	}
	items := nodesOfKind(nodes, KindItem)
	if !reflect.DeepEqual(labels(items), []string{"indented item"}) {
		t.Errorf("items = %v, want [indented item] — list markers tolerate indentation", labels(items))
	}
}

func TestParse_IndentationDoesNotNest(t *testing.T) {
	input := "## S\n### Sub\n- top\n    - nested\n        - deeper\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewAll), KindItem)

	for _, it := range items {
		if it.Parent != "Sub" {
			t.Errorf("item %q parent = %q, want Sub — indentation never builds hierarchy", it.Label, it.Parent)
		}
	}
	if len(items) != 3 {
		t.Errorf("items = %v, want all three depths", labels(items))
	}
}

func TestParse_DeepHeadingsAreInert(t *testing.T) {
	input := "## S\n### Sub\n#### Deep heading\n- item\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	for _, n := range nodes {
		if n.Label == "Deep heading" {
			t.Error("#### headings must be treated as prose")
		}
	}
	if got := len(nodesOfKind(nodes, KindItem)); got != 1 {
		t.Errorf("items after inert heading = %d, want 1", got)
	}
}

func TestParse_CRLFNormalized(t *testing.T) {
	unix := "## S\n### Sub\n- [x] a\n"
	windows := "## S\r\n### Sub\r\n- [x] a\r\n"

	p := NewParser(nil)
	if !reflect.DeepEqual(p.Parse(unix, ViewImplementations), p.Parse(windows, ViewImplementations)) {
		t.Error("CRLF input should parse identically to LF input")
	}
}

func TestParse_InactiveSectionSkipsEverything(t *testing.T) {
	input := "## Overview\n### Hidden Sub\n- hidden item\n## User Scenarios\n### Primary\n- visible\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewRequirements)

	want := []Node{
		{Label: "User Scenarios", Line: 3, Kind: KindSection},
		{Label: "Primary", Line: 4, Kind: KindSubsection, Parent: "User Scenarios"},
		{Label: "visible", Line: 5, Kind: KindItem, Parent: "Primary"},
	}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes = %+v\nwant %+v", nodes, want)
	}
}

func TestParse_NumberedMarkerWithCheckbox(t *testing.T) {
	input := "## Tasks\n### Wave 1\n1. [x] setup\n2. [ ] build\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewImplementations), KindItem)

	if len(items) != 2 {
		t.Fatalf("items = %v, want 2", labels(items))
	}
	if items[0].Label != "setup" || items[0].Status != StatusCompleted {
		t.Errorf("item 0 = %+v, want completed 'setup'", items[0])
	}
	if items[1].Label != "build" || items[1].Status != StatusPending {
		t.Errorf("item 1 = %+v, want pending 'build'", items[1])
	}
}

func TestParse_StatusOnlyTrackedInImplementationsView(t *testing.T) {
	input := "## Tasks\n### Wave 1\n- [x] done\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewAll), KindItem)

	if len(items) != 1 {
		t.Fatalf("items = %v, want 1", labels(items))
	}
	if items[0].Label != "done" {
		t.Errorf("label = %q, want checkbox stripped", items[0].Label)
	}
	if items[0].Status != StatusNone {
		t.Errorf("status = %q, want none outside implementations view", items[0].Status)
	}
}

func TestParse_EmptyLabelSkipped(t *testing.T) {
	input := "## S\n### Sub\n- [ ]\n- [x]\n"

	p := NewParser(nil)
	if items := nodesOfKind(p.Parse(input, ViewImplementations), KindItem); len(items) != 0 {
		t.Errorf("items = %v, want none for empty labels", labels(items))
	}
}

func TestParse_MidlineCheckboxStaysInLabel(t *testing.T) {
	input := "## S\n### Sub\n- finish [x] later\n"

	p := NewParser(nil)
	items := nodesOfKind(p.Parse(input, ViewImplementations), KindItem)

	if len(items) != 1 || items[0].Label != "finish [x] later" {
		t.Errorf("items = %+v, want mid-line checkbox kept in label", items)
	}
	if items[0].Status != StatusNone {
		t.Errorf("status = %q, want none", items[0].Status)
	}
}

func TestParse_ProseAndBlankLinesInert(t *testing.T) {
	input := "## S\nsome prose\n\n### Sub\nmore prose\n\n- item\n"

	p := NewParser(nil)
	nodes := p.Parse(input, ViewAll)

	if len(nodes) != 3 {
		t.Errorf("nodes = %+v, want section + subsection + item only", nodes)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser(nil)
	if nodes := p.Parse("", ViewAll); len(nodes) != 0 {
		t.Errorf("nodes = %+v, want none", nodes)
	}
}

// --- Summarize ---

func TestSummarize(t *testing.T) {
	input := "## Tasks\n### Wave 1\n- [x] a\n- [x] b\n- [ ] c\n- [~] d\n- untracked\n"

	p := NewParser(nil)
	s := Summarize(p.Parse(input, ViewImplementations))

	if s.Sections != 1 || s.Subsections != 1 || s.Items != 5 {
		t.Errorf("counts = %+v, want 1/1/5", s)
	}
	if s.Completed != 2 || s.Pending != 1 || s.InProgress != 1 {
		t.Errorf("status counts = %+v, want 2 completed, 1 pending, 1 in progress", s)
	}
	if s.Tracked() != 4 {
		t.Errorf("Tracked() = %d, want 4", s.Tracked())
	}
	if s.Percent() != 50 {
		t.Errorf("Percent() = %d, want 50", s.Percent())
	}
}

func TestSummarize_NothingTracked(t *testing.T) {
	var s Summary
	if s.Percent() != 0 {
		t.Errorf("Percent() on empty summary = %d, want 0", s.Percent())
	}
}
