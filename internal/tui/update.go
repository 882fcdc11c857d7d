package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg signals a periodic redraw of the running clock.
type tickMsg time.Time

// doTick creates a command that waits for the interval and sends a tickMsg.
func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, doTick(m.refreshInterval)

	default:
		return m, nil
	}
}

// handleKey processes keyboard input and returns the updated model and command.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.ctrl.Quit(m.ctx); err != nil {
			slog.Error("save on quit failed", "error", err)
			m.quitErr = err
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if err := m.ctrl.Toggle(m.ctx); err != nil {
			slog.Error("toggle failed", "error", err)
			m.statusErr = err.Error()
		} else {
			m.statusErr = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.ctrl.NextScramble()
		return m, nil
	}

	return m, nil
}
