package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies a form input.
type Field int

const (
	FieldTickets Field = iota
	FieldGroupSize
	FieldDisplayLimit
	FieldQuotas
	fieldCount
)

var (
	// errNoTickets is shown in place of an analysis before any ticket is typed.
	errNoTickets    = errors.New("no tickets yet")
	errGroupSizeNaN = errors.New("group size must be a number")
	errLimitNaN     = errors.New("display limit must be a number")
)

// Model holds the interactive form state. Every edit reruns the whole
// pipeline from the raw field values.
type Model struct {
	theme        themes.Theme
	lastErr      error
	analysis     *draw.Analysis
	config       Config
	keymap       KeyMap
	status       string
	help         help.Model
	tickets      textarea.Model
	groupSize    textinput.Model
	displayLimit textinput.Model
	quotas       textinput.Model
	focus        Field
	width        int
	height       int
	quitting     bool
}

// New creates the form model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tickets := textarea.New()
	tickets.Placeholder = "Ex.: 48602, 01927, 82187, 34246, 68744"
	tickets.CharLimit = 0
	tickets.ShowLineNumbers = false
	tickets.SetHeight(4)
	tickets.SetValue(cfg.Tickets)
	tickets.Focus()

	m := Model{
		config:       cfg,
		theme:        cfg.Theme,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		tickets:      tickets,
		groupSize:    newNumberInput(strconv.Itoa(cfg.Draw.GroupSize), 5),
		displayLimit: newNumberInput(strconv.Itoa(cfg.Draw.DisplayLimit), 5),
		quotas:       textinput.New(),
		focus:        FieldTickets,
	}
	m.quotas.Placeholder = "Ex.: 070, 471, 590"
	m.quotas.SetValue(cfg.Draw.QuotaText)
	m.help.ShowAll = false

	m.recompute()
	return m
}

func newNumberInput(value string, limit int) textinput.Model {
	in := textinput.New()
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tickets.SetWidth(min(max(msg.Width-4, 20), 80))
		m.help.Width = msg.Width
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = m.theme.StatusError.Render("Export failed: " + msg.err.Error())
		} else {
			m.status = m.theme.StatusSuccess.Render("Exported " + strings.Join(msg.paths, ", "))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextField):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keymap.PrevField):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.Export):
			if m.analysis == nil || m.analysis.Empty() {
				m.status = m.theme.StatusError.Render("Nothing to export yet.")
				return m, nil
			}
			return m, exportAnalysis(m.config.ExportDir, m.analysis)
		}
	}

	cmd := m.updateFocused(msg)
	m.recompute()
	return m, cmd
}

// setFocus moves keyboard focus to field f.
func (m *Model) setFocus(f Field) tea.Cmd {
	m.tickets.Blur()
	m.groupSize.Blur()
	m.displayLimit.Blur()
	m.quotas.Blur()
	m.focus = f

	switch f {
	case FieldTickets:
		return m.tickets.Focus()
	case FieldGroupSize:
		return m.groupSize.Focus()
	case FieldDisplayLimit:
		return m.displayLimit.Focus()
	default:
		return m.quotas.Focus()
	}
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FieldTickets:
		m.tickets, cmd = m.tickets.Update(msg)
	case FieldGroupSize:
		m.groupSize, cmd = m.groupSize.Update(msg)
	case FieldDisplayLimit:
		m.displayLimit, cmd = m.displayLimit.Update(msg)
	default:
		m.quotas, cmd = m.quotas.Update(msg)
	}
	return cmd
}

// recompute reruns the pipeline from the current field values.
func (m *Model) recompute() {
	cfg, err := m.drawConfig()
	if err != nil {
		m.analysis = nil
		m.lastErr = err
		return
	}

	a, err := draw.Analyze(cfg, m.tickets.Value())
	if err != nil {
		m.analysis = nil
		m.lastErr = err
		return
	}
	m.analysis = a
	m.lastErr = nil
	if a.Empty() {
		m.lastErr = errNoTickets
	}
}

func (m Model) drawConfig() (draw.Config, error) {
	groupSize, err := strconv.Atoi(strings.TrimSpace(m.groupSize.Value()))
	if err != nil {
		return draw.Config{}, errGroupSizeNaN
	}
	limit, err := strconv.Atoi(strings.TrimSpace(m.displayLimit.Value()))
	if err != nil {
		return draw.Config{}, errLimitNaN
	}

	cfg := draw.Config{
		GroupSize:    groupSize,
		DisplayLimit: limit,
		QuotaText:    m.quotas.Value(),
	}
	if err := config.ValidateDrawConfig(cfg); err != nil {
		return draw.Config{}, err
	}
	return cfg, nil
}

// Analysis returns the result of the last recomputation, or nil when the
// form holds an invalid setting.
func (m Model) Analysis() *draw.Analysis {
	return m.analysis
}

// Focus returns the field that currently has keyboard focus.
func (m Model) Focus() Field {
	return m.focus
}

// Err returns the reason no report is shown, if any.
func (m Model) Err() error {
	return m.lastErr
}
