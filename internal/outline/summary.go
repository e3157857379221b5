package outline

// Summary aggregates a parse result into per-kind and per-status counts.
// Status counts only cover items that carried a checkbox — items without
// one contribute to Items but not to Tracked().
type Summary struct {
	Sections    int `json:"sections"`
	Subsections int `json:"subsections"`
	Items       int `json:"items"`
	Completed   int `json:"completed"`
	InProgress  int `json:"in_progress"`
	Pending     int `json:"pending"`
}

// Summarize counts nodes by kind and status.
func Summarize(nodes []Node) Summary {
	var s Summary
	for _, n := range nodes {
		switch n.Kind {
		case KindSection:
			s.Sections++
		case KindSubsection:
			s.Subsections++
		case KindItem:
			s.Items++
			switch n.Status {
			case StatusCompleted:
				s.Completed++
			case StatusInProgress:
				s.InProgress++
			case StatusPending:
				s.Pending++
			}
		}
	}
	return s
}

// Tracked returns the number of items that carried a checkbox.
func (s Summary) Tracked() int {
	return s.Completed + s.InProgress + s.Pending
}

// Percent returns the completion percentage over tracked items,
// or 0 when nothing is tracked.
func (s Summary) Percent() int {
	tracked := s.Tracked()
	if tracked == 0 {
		return 0
	}
	return s.Completed * 100 / tracked
}
