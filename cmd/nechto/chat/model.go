// Package chat provides the interactive TUI for the dialogue responder:
//   - model.go: types, Run, Init, Update loop
//   - view.go: rendering and styles
//   - commands.go: /command handling and report formatting
package chat

import (
	"context"
	"fmt"
	"strings"

	"nechto/internal/config"
	"nechto/internal/engine"
	"nechto/internal/language"
	"nechto/internal/logging"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Model is the bubbletea model for the chat session.
type Model struct {
	entity *engine.Entity
	cfg    config.Config
	hint   language.Hint

	viewport viewport.Model
	input    textinput.Model
	renderer *glamour.TermRenderer

	transcript []string
	ready      bool
	width      int
}

// NewModel builds the chat model around an already-constructed entity.
func NewModel(ent *engine.Entity, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "say something (or /help)"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 2000

	return Model{
		entity: ent,
		cfg:    cfg,
		hint:   cfg.LanguageHint(),
		input:  ti,
	}
}

// Run starts the interactive chat. If a rules override file is configured it
// is watched for the duration of the session and hot-swapped into the
// classifier on valid saves.
func Run(ent *engine.Entity, cfg config.Config) error {
	var watcher *config.RulesWatcher
	if cfg.RulesFile != "" {
		w, err := config.NewRulesWatcher(cfg.RulesFile, ent.ReplaceRules)
		if err != nil {
			return fmt.Errorf("chat: rules watcher: %w", err)
		}
		if err := w.Start(context.Background()); err != nil {
			return fmt.Errorf("chat: rules watcher: %w", err)
		}
		watcher = w
		defer watcher.Stop()
	}

	p := tea.NewProgram(NewModel(ent, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerH := 2
		footerH := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerH-footerH)
			m.ready = true
			if r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-4),
			); err == nil {
				m.renderer = r
			}
			m.appendBlock(m.greeting())
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerH - footerH
		}
		m.input.Width = msg.Width - 4
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			return m.handleLine(line)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleLine routes one submitted line: slash command or dialogue turn.
func (m Model) handleLine(line string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(line, "/") {
		return m.handleCommand(line)
	}

	resp := m.entity.TalkSimply(line, m.hint)
	logging.Get(logging.CategoryDialogue).Debugw("chat turn",
		"response_type", resp.ResponseType, "cycle", resp.Cycle)

	m.appendBlock(renderTurn(line, resp))
	m.refreshViewport()
	return m, nil
}

func (m *Model) appendBlock(block string) {
	m.transcript = append(m.transcript, block)
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}
