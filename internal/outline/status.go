package outline

import "strings"

// --- Checkbox status extraction ---
//
// Checkbox detection is strictly prefix-anchored: a token appearing
// mid-line is not recognized and stays in the label text. Tokens are
// case-sensitive — only lowercase [x] marks completion.

// checkboxTokens maps each recognized token to its status, in the order
// they are tried. Order doesn't affect correctness (tokens are mutually
// exclusive prefixes) but keeps iteration deterministic.
var checkboxTokens = []struct {
	token  string
	status Status
}{
	{"[x]", StatusCompleted},
	{"[ ]", StatusPending},
	{"[~]", StatusInProgress},
}

// ExtractStatus peels a leading checkbox token off a raw item text and
// classifies it. The token and any whitespace around it are stripped from
// the returned label. When no token is present the status is StatusNone
// and the label is the input trimmed of surrounding whitespace.
func ExtractStatus(raw string) (string, Status) {
	trimmed := strings.TrimLeft(raw, " \t")
	for _, cb := range checkboxTokens {
		if strings.HasPrefix(trimmed, cb.token) {
			return strings.TrimSpace(trimmed[len(cb.token):]), cb.status
		}
	}
	return strings.TrimSpace(raw), StatusNone
}

// StripCheckbox removes a leading checkbox token without recording its
// status. Used by views that don't track completion.
func StripCheckbox(raw string) string {
	label, _ := ExtractStatus(raw)
	return label
}

// hasCheckboxPrefix reports whether the text begins with a recognized
// checkbox token. The caller is expected to have trimmed leading whitespace.
func hasCheckboxPrefix(text string) bool {
	for _, cb := range checkboxTokens {
		if strings.HasPrefix(text, cb.token) {
			return true
		}
	}
	return false
}
