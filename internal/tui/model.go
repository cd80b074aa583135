package tui

import (
	"context"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/response"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/components"
	"github.com/Veraticus/sarcastic-confessional/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateConfessing State = iota
	StateStats
	StateConfirmReset
	StateHelp
)

// inputLimit caps a single confession typed into the TUI.
const inputLimit = 1000

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	confessor  Confessor
	theme      themes.Theme
	lastResult *model.Result
	status     string
	statusErr  bool
	input      textinput.Model
	statsPanel components.StatsPanelModel
	help       help.Model
	keymap     KeyMap
	config     Config
	stats      model.Statistics
	width      int
	height     int
	state      State
	busy       bool
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, confessor Confessor, cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Was hast du angestellt?"
	input.CharLimit = inputLimit
	input.Prompt = "✝ "
	input.Focus()

	m := Model{
		ctx:        ctx,
		confessor:  confessor,
		theme:      cfg.Theme,
		input:      input,
		statsPanel: components.NewStatsPanelModel(cfg.Theme),
		help:       help.New(),
		keymap:     DefaultKeyMap(),
		config:     cfg,
		width:      cfg.Width,
		height:     cfg.Height,
		state:      StateConfessing,
	}
	// Read before the program starts; afterwards only commands touch the core.
	m.setStats(confessor.Statistics())
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case confessionHeardMsg:
		m.busy = false
		result := msg.result
		m.lastResult = &result
		m.setStats(msg.stats)
		m.status, m.statusErr = "", false
		if result.Accepted && !result.Persisted {
			m.status, m.statusErr = "Konnte nicht gespeichert werden", true
		}
		return m, nil

	case absolvedMsg:
		m.busy = false
		m.state = StateConfessing
		m.setStats(msg.stats)
		m.lastResult = nil
		if msg.err != nil {
			m.status, m.statusErr = "Absolution nicht gespeichert: "+msg.err.Error(), true
		} else {
			m.status, m.statusErr = response.ResetMessage, false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey dispatches a key press based on the current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keymap.ClearScreen) {
		return m, tea.ClearScreen
	}

	switch m.state {
	case StateConfirmReset:
		switch {
		case key.Matches(msg, m.keymap.Accept):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.absolve()
		case key.Matches(msg, m.keymap.Reject):
			m.state = StateConfessing
			m.status, m.statusErr = "Feigling.", false
		}
		return m, nil

	case StateStats, StateHelp:
		switch {
		case key.Matches(msg, m.keymap.ToggleStats) && m.state == StateStats,
			key.Matches(msg, m.keymap.ToggleHelp) && m.state == StateHelp,
			msg.Type == tea.KeyEsc:
			m.state = StateConfessing
		case key.Matches(msg, m.keymap.ToggleStats):
			m.state = StateStats
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.state = StateHelp
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Submit):
		if m.busy {
			return m, nil
		}
		text := m.input.Value()
		m.input.Reset()
		m.busy = true
		return m, m.confess(text)
	case key.Matches(msg, m.keymap.Reset):
		m.state = StateConfirmReset
		return m, nil
	case key.Matches(msg, m.keymap.ToggleStats):
		m.state = StateStats
		return m, nil
	case key.Matches(msg, m.keymap.ToggleHelp):
		m.state = StateHelp
		return m, nil
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateStats:
		return m.renderStatsView()
	case StateHelp:
		return m.renderHelpView()
	case StateConfirmReset:
		return m.renderConfirmView()
	default:
		return m.renderConfessionView()
	}
}

func (m *Model) setStats(stats model.Statistics) {
	m.stats = stats
	m.statsPanel = m.statsPanel.SetStatistics(stats)
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	inputWidth := m.width - 8
	if m.showSidePanel() {
		inputWidth = m.width/2 - 8
		m.statsPanel = m.statsPanel.Resize(m.width/2-4, m.height-6)
	} else {
		m.statsPanel = m.statsPanel.Resize(m.width-4, m.height-6)
	}
	m.input.Width = max(inputWidth, 10)
	m.help.Width = m.width
}

// showSidePanel reports whether the statistics sit next to the confession
// box rather than on their own screen.
func (m Model) showSidePanel() bool {
	return m.config.ShowStats && m.width >= 100
}
