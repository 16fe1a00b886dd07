package tui

import (
	"errors"
	"strings"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// View renders the form and the live report.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(cli.TargetIcon + " Consortium draw simulator"),
		m.renderForm(),
		m.renderReport(),
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) label(f Field, text string) string {
	if m.focus == f {
		return m.theme.FocusedLabel.Render("› " + text)
	}
	return m.theme.Label.Render("  " + text)
}

func (m Model) renderForm() string {
	settings := lipgloss.JoinHorizontal(lipgloss.Top,
		m.label(FieldGroupSize, "Group size")+" "+m.groupSize.View(),
		"   ",
		m.label(FieldDisplayLimit, "Show up to")+" "+m.displayLimit.View(),
	)

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.label(FieldTickets, "Drawn tickets (comma or line separated)"),
		m.tickets.View(),
		"",
		settings,
		m.label(FieldQuotas, "My quotas")+" "+m.quotas.View(),
		m.theme.Muted.Render("Up to 1000: centenas. 1001 to 10000: milhares. Tickets are padded to 5 digits."),
	)
	return m.theme.Panel.Render(form)
}

func (m Model) renderReport() string {
	if m.lastErr != nil {
		if errors.Is(m.lastErr, errNoTickets) {
			return cli.FormatInfo("Enter the drawn tickets above to see the results.")
		}
		return m.theme.StatusError.Render(m.lastErr.Error())
	}

	var b strings.Builder
	err := cli.RenderReport(&b, m.analysis, cli.ReportOptions{
		Printer:  m.config.Printer,
		ShowFull: true,
	})
	if err != nil {
		return m.theme.StatusError.Render(err.Error())
	}
	return b.String()
}
