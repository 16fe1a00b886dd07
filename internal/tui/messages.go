package tui

// exportDoneMsg reports the outcome of a CSV export.
type exportDoneMsg struct {
	err   error
	paths []string
}
