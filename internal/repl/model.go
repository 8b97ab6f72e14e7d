// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive shell
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	mclog "github.com/msto63/mictylish/foundation/core/log"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	footerHeight  = 2 // input + help
)

// Config holds REPL configuration
type Config struct {
	Session *Session
	History HistoryStore

	// HistoryLimit bounds recall and the persisted history; 0 keeps nothing
	HistoryLimit int
	Logger       *mclog.Logger
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	width    int
	height   int
	quitting bool

	input    textinput.Model
	viewport viewport.Model

	session *Session
	history HistoryStore
	limit   int
	logger  *mclog.Logger

	transcript []Line

	// Input history
	inputHistory []string
	historyIndex int    // -1 = editing a new line
	currentInput string // line being edited before navigating
}

// New creates a new REPL model and loads recent history
func New(cfg Config) Model {
	if cfg.History == nil {
		cfg.History = NewMemoryHistory()
	}
	if cfg.Logger == nil {
		cfg.Logger = mclog.GetDefault()
	}

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(cfg.Session.Prompt())
	ti.Placeholder = "let x = 1"
	ti.Focus()

	var recent []string
	if cfg.HistoryLimit > 0 {
		var err error
		recent, err = cfg.History.Recent(context.Background(), cfg.HistoryLimit)
		if err != nil {
			cfg.Logger.LogError(err)
		}
	}

	return Model{
		input:        ti,
		viewport:     viewport.New(defaultWidth, defaultHeight),
		session:      cfg.Session,
		history:      cfg.History,
		limit:        cfg.HistoryLimit,
		logger:       cfg.Logger,
		inputHistory: recent,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight, 1)
		m.input.Width = max(msg.Width-len(m.session.Prompt())-1, 1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.inputHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.input.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()
	m.historyIndex = -1
	m.currentInput = ""

	reply := m.session.Handle(raw)
	if !reply.Accepted {
		return m, nil
	}

	m.remember(strings.TrimSpace(raw))
	m.transcript = append(m.transcript, reply.Lines...)
	m.refresh()

	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// remember appends line to the recall list and the store, skipping a repeat
// of the previous line. A limit of 0 records nothing.
func (m *Model) remember(line string) {
	if m.limit <= 0 {
		return
	}
	if n := len(m.inputHistory); n > 0 && m.inputHistory[n-1] == line {
		return
	}
	m.inputHistory = append(m.inputHistory, line)
	if len(m.inputHistory) > m.limit {
		m.inputHistory = m.inputHistory[len(m.inputHistory)-m.limit:]
	}

	ctx := context.Background()
	if err := m.history.Append(ctx, m.session.ID(), line); err != nil {
		m.logger.LogError(err)
		return
	}
	if _, err := m.history.Prune(ctx, m.limit); err != nil {
		m.logger.LogError(err)
	}
}

func (m *Model) refresh() {
	rendered := make([]string, len(m.transcript))
	for i, l := range m.transcript {
		rendered[i] = renderLine(l)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

// Transcript returns the lines produced so far
func (m Model) Transcript() []Line {
	return append([]Line(nil), m.transcript...)
}

// Quitting reports whether the session has ended
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if len(m.transcript) > 0 {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: run  up/down: history  :help  ctrl+d: quit"))
	return b.String()
}

// Run starts the REPL on the terminal and blocks until it ends
func Run(ctx context.Context, cfg Config) error {
	program := tea.NewProgram(New(cfg), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
