// Package tui provides the terminal timer interface using bubbletea.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/cube/internal/session"
	"github.com/npratt/cube/internal/stats"
	"github.com/npratt/cube/internal/timer"
)

// Controller is the application the TUI drives. *app.App implements it.
type Controller interface {
	Toggle(ctx context.Context) error
	Quit(ctx context.Context) error
	NextScramble()
	Scramble() string
	Elapsed() time.Duration
	Phase() timer.Phase
	Session() *session.Session
	Summary() stats.Summary
}

// TUI is the terminal interface for timing solves.
type TUI struct {
	ctrl            Controller
	refreshInterval time.Duration
	recentTimes     int
	timesWidth      int
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI driving ctrl.
func New(ctrl Controller, opts ...Option) *TUI {
	t := &TUI{
		ctrl:            ctrl,
		refreshInterval: defaultRefreshInterval,
		recentTimes:     defaultRecentTimes,
		timesWidth:      defaultTimesWidth,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithRefreshInterval sets how often the clock is redrawn.
func WithRefreshInterval(d time.Duration) Option {
	return func(t *TUI) {
		if d > 0 {
			t.refreshInterval = d
		}
	}
}

// WithRecentTimes sets how many recent times the sparkline plots. Zero hides it.
func WithRecentTimes(n int) Option {
	return func(t *TUI) {
		t.recentTimes = max(0, n)
	}
}

// WithTimesWidth sets the width of the times and stats panes.
func WithTimesWidth(w int) Option {
	return func(t *TUI) {
		if w > 0 {
			t.timesWidth = w
		}
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
// Cancellation is a clean exit. A failed save on quit is returned.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.ctrl, t.refreshInterval, t.recentTimes, t.timesWidth)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}
	return quitError(final)
}

// quitError returns the save error recorded when the user quit, if any.
func quitError(final tea.Model) error {
	if m, ok := final.(model); ok {
		return m.quitErr
	}
	return nil
}
