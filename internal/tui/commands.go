package tui

import (
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// exportAnalysis writes both code views of the current analysis.
func exportAnalysis(dir string, a *draw.Analysis) tea.Cmd {
	return func() tea.Msg {
		paths, err := export.WriteAnalysis(dir, "", a)
		return exportDoneMsg{paths: paths, err: err}
	}
}
