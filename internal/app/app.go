// Package app ties the timer, scrambler, session and store together behind
// the two intents the UI forwards: toggle the timer and quit.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/npratt/cube/internal/scramble"
	"github.com/npratt/cube/internal/session"
	"github.com/npratt/cube/internal/solve"
	"github.com/npratt/cube/internal/stats"
	"github.com/npratt/cube/internal/storage"
	"github.com/npratt/cube/internal/timer"
)

// App owns one timer, one session and the pending scramble. It is driven
// from a single goroutine; no method is safe for concurrent use.
type App struct {
	puzzle    scramble.Puzzle
	timer     *timer.Timer
	scrambler *scramble.Scrambler
	session   *session.Session
	store     storage.Store
	logger    *slog.Logger

	pending string
}

// Option configures an App.
type Option func(*App)

// WithTimer replaces the default timer (used to inject a clock).
func WithTimer(t *timer.Timer) Option {
	return func(a *App) {
		a.timer = t
	}
}

// WithScrambler replaces the default scrambler (used to seed the source).
func WithScrambler(s *scramble.Scrambler) Option {
	return func(a *App) {
		a.scrambler = s
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New loads the session from store and draws the first scramble.
func New(ctx context.Context, puzzle scramble.Puzzle, store storage.Store, opts ...Option) (*App, error) {
	a := &App{
		puzzle: puzzle,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.timer == nil {
		a.timer = timer.New()
	}
	if a.scrambler == nil {
		a.scrambler = scramble.New(nil)
	}

	sess, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	a.session = sess
	a.pending = a.scrambler.Generate(puzzle)

	a.logger.Debug("session loaded", "solves", sess.Len(), "puzzle", puzzle.String())
	return a, nil
}

// Toggle stops a running timer and records the solve, or otherwise starts a
// fresh attempt.
//
// On stop the solve is built from the paused elapsed time and the pending
// scramble, appended, persisted, and a new scramble is drawn. A failed save
// is returned but the solve stays in the session.
func (a *App) Toggle(ctx context.Context) error {
	if !a.timer.Running() {
		a.timer.Reset()
		a.timer.Start()
		a.logger.Debug("timer started")
		return nil
	}

	a.timer.Pause()
	elapsed := a.timer.Elapsed()

	sv, err := solve.Build(a.pending, &elapsed, solve.NoPenalty)
	if err != nil {
		return fmt.Errorf("build solve: %w", err)
	}
	a.session.Save(sv)
	a.pending = a.scrambler.Generate(a.puzzle)

	a.logger.Info("solve recorded", "time_ms", elapsed.Milliseconds(), "solves", a.session.Len())

	if err := a.store.Save(ctx, a.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Record appends an already built solve and persists the session.
func (a *App) Record(ctx context.Context, sv solve.Solve) error {
	a.session.Save(sv)
	a.logger.Info("solve recorded", "penalty", sv.Penalty().String(), "solves", a.session.Len())
	if err := a.store.Save(ctx, a.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Quit persists the session.
func (a *App) Quit(ctx context.Context) error {
	if err := a.store.Save(ctx, a.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.logger.Info("session saved", "solves", a.session.Len())
	return nil
}

// Scramble returns the pending scramble.
func (a *App) Scramble() string {
	return a.pending
}

// NextScramble discards the pending scramble and draws a new one. It is
// ignored while the timer runs.
func (a *App) NextScramble() {
	if a.timer.Running() {
		return
	}
	a.pending = a.scrambler.Generate(a.puzzle)
}

// Elapsed returns the timer's elapsed time.
func (a *App) Elapsed() time.Duration {
	return a.timer.Elapsed()
}

// Phase returns the timer's phase.
func (a *App) Phase() timer.Phase {
	return a.timer.Phase()
}

// Session returns the session. Callers must treat it as read-only.
func (a *App) Session() *session.Session {
	return a.session
}

// Summary computes statistics over the current session.
func (a *App) Summary() stats.Summary {
	return stats.Summarize(a.session)
}
