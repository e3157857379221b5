package outline

import "testing"

// --- All view ---

func TestIsRelevant_AllModeAcceptsEverything(t *testing.T) {
	c := NewClassifier(nil)

	headings := []string{"Overview", "Random Notes", "", "Review & Acceptance Checklist"}
	for _, h := range headings {
		if !c.IsRelevant(h, ViewAll) {
			t.Errorf("IsRelevant(%q, all) = false, want true", h)
		}
	}
}

// --- Requirements view ---

func TestIsRelevant_Requirements(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		heading string
		want    bool
	}{
		{"User Scenarios & Testing", true},
		{"Functional Requirements", true},
		{"Testing", true}, // substring containment: "Testing" contains "test"
		{"FUNCTIONAL OVERVIEW", true},
		{"Review & Acceptance Checklist", false},
		{"Overview", false},
		{"Implementation Plan", false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			if got := c.IsRelevant(tt.heading, ViewRequirements); got != tt.want {
				t.Errorf("IsRelevant(%q, requirements) = %v, want %v", tt.heading, got, tt.want)
			}
		})
	}
}

// --- Implementations view ---

func TestIsRelevant_Implementations(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		heading string
		want    bool
	}{
		{"Review & Acceptance Checklist", true},
		{"Implementation Plan", true},
		{"Development Tasks", true},
		{"Task Breakdown", true},
		{"Requirements", true},
		{"User Scenarios", false},
		{"Overview", false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			if got := c.IsRelevant(tt.heading, ViewImplementations); got != tt.want {
				t.Errorf("IsRelevant(%q, implementations) = %v, want %v", tt.heading, got, tt.want)
			}
		})
	}
}

// --- Custom keyword sets ---

func TestIsRelevant_CustomKeywords(t *testing.T) {
	design := ViewMode("design")
	c := NewClassifier(Keywords{
		design: {"architecture", "design"},
	})

	if !c.IsRelevant("System Architecture", design) {
		t.Error("custom mode should match its own keywords")
	}
	if c.IsRelevant("System Architecture", ViewRequirements) {
		t.Error("custom classifier has no requirements keywords — nothing should match")
	}
	if !c.IsRelevant("Anything", ViewAll) {
		t.Error("all view must accept everything regardless of keyword config")
	}
}

func TestIsRelevant_UnknownModeMatchesNothing(t *testing.T) {
	c := NewClassifier(nil)
	if c.IsRelevant("Requirements", ViewMode("bogus")) {
		t.Error("unknown view mode should have no keywords and match nothing")
	}
}

// --- ParseViewMode ---

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"all", ViewAll, false},
		{"requirements", ViewRequirements, false},
		{"implementations", ViewImplementations, false},
		{"", ViewAll, false},
		{"tasks", "", true},
	}

	for _, tt := range tests {
		got, err := ParseViewMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseViewMode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseViewMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseViewMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
