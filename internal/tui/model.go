package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultRefreshInterval = 16 * time.Millisecond
	defaultRecentTimes     = 30
	defaultTimesWidth      = 36
)

// model is the bubbletea model for the TUI.
type model struct {
	ctx  context.Context
	ctrl Controller

	keys keyMap
	help help.Model

	// Settings
	refreshInterval time.Duration
	recentTimes     int
	timesWidth      int

	// UI state
	width     int
	height    int
	statusErr string
	quitErr   error
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, ctrl Controller, refresh time.Duration, recentTimes, timesWidth int) model {
	return model{
		ctx:             ctx,
		ctrl:            ctrl,
		keys:            defaultKeyMap(),
		help:            help.New(),
		refreshInterval: refresh,
		recentTimes:     recentTimes,
		timesWidth:      timesWidth,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return doTick(m.refreshInterval)
}

// Update is implemented in update.go, View in view.go.
