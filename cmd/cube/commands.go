package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/cube/internal/app"
	"github.com/npratt/cube/internal/config"
	"github.com/npratt/cube/internal/scramble"
	"github.com/npratt/cube/internal/shutdown"
	"github.com/npratt/cube/internal/solve"
	"github.com/npratt/cube/internal/stats"
	"github.com/npratt/cube/internal/storage"
	"github.com/npratt/cube/internal/tui"
)

// shutdownTimeout bounds how long the TUI gets to save after a signal.
const shutdownTimeout = 5 * time.Second

// cli holds what every command needs: the viper instance flags are bound to
// and the stderr logger.
type cli struct {
	v        *viper.Viper
	logger   *slog.Logger
	logLevel *slog.LevelVar
}

// newRootCmd builds the cube command tree on v.
func newRootCmd(v *viper.Viper, logger *slog.Logger, logLevel *slog.LevelVar) *cobra.Command {
	v.SetEnvPrefix("CUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := &cli{v: v, logger: logger, logLevel: logLevel}

	startCmd := c.startCmd()

	rootCmd := &cobra.Command{
		Use:   "cube",
		Short: "Speedcubing timer",
		Long: `cube is a practice timer for speedcubing.

It shows a random scramble, times the solve with the space bar, and keeps
a session of results with running statistics.

Run without a subcommand to open the timer.`,
		SilenceUsage: true,
		RunE:         startCmd.RunE,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: ~/.config/cube/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log file path for the timer UI")
	rootCmd.PersistentFlags().String(FlagDataFile, "", "Session file path")
	rootCmd.PersistentFlags().String(FlagBackend, "", "Storage backend (json/sqlite)")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cube %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(c.scrambleCmd())
	rootCmd.AddCommand(c.addCmd())
	rootCmd.AddCommand(c.listCmd())
	rootCmd.AddCommand(c.statsCmd())

	return rootCmd
}

// loadConfig loads the layered config, applies flag overrides and resolves
// paths.
func (c *cli) loadConfig() (*config.Config, scramble.Puzzle, error) {
	if c.v.GetBool(FlagVerbose) {
		c.logLevel.Set(slog.LevelDebug)
		c.logger.Debug("verbose logging enabled")
	}

	cfg, err := config.LoadConfig(c.v)
	if err != nil {
		return nil, 0, fmt.Errorf("load config: %w", err)
	}

	// Paths given on the command line are relative to the working directory,
	// not the data directory.
	if p := c.v.GetString(FlagDataFile); p != "" {
		if cfg.Storage.Path, err = filepath.Abs(p); err != nil {
			return nil, 0, fmt.Errorf("resolve %s: %w", FlagDataFile, err)
		}
	}
	if p := c.v.GetString(FlagLogFile); p != "" {
		if cfg.Paths.Log, err = filepath.Abs(p); err != nil {
			return nil, 0, fmt.Errorf("resolve %s: %w", FlagLogFile, err)
		}
	}
	if b := c.v.GetString(FlagBackend); b != "" {
		cfg.Storage.Backend = b
		if err := cfg.Validate(); err != nil {
			return nil, 0, err
		}
	}

	if err := cfg.ResolvePaths(); err != nil {
		return nil, 0, fmt.Errorf("resolve paths: %w", err)
	}

	puzzle, err := scramble.ParsePuzzle(cfg.Puzzle)
	if err != nil {
		return nil, 0, fmt.Errorf("load config: %w", err)
	}

	c.logger.Debug("config loaded",
		"storage", cfg.Storage.Path,
		"backend", cfg.Storage.Backend,
		"puzzle", puzzle.String(),
	)
	return cfg, puzzle, nil
}

// openApp opens the configured store and loads the session into an App.
// The caller closes the returned store.
func openApp(ctx context.Context, cfg *config.Config, puzzle scramble.Puzzle, logger *slog.Logger) (*app.App, storage.Store, error) {
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	a, err := app.New(ctx, puzzle, store, app.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return a, store, nil
}

func (c *cli) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Open the timer",
		Long: `Open the full-screen timer.

Press space to start and stop the timer, n for a new scramble, q to quit.
Every solve is saved as soon as the timer stops.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("the timer needs an interactive terminal")
			}

			cfg, puzzle, err := c.loadConfig()
			if err != nil {
				return err
			}

			tuiLog, err := SetupTUILogger(cfg.Paths.Log, c.logLevel, cfg.LogRotation)
			if err != nil {
				return fmt.Errorf("setup log file: %w", err)
			}
			defer func() { _ = tuiLog.Close() }()
			slog.SetDefault(tuiLog.Logger)

			a, store, err := openApp(cmd.Context(), cfg, puzzle, tuiLog.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ui := tui.New(a,
				tui.WithRefreshInterval(cfg.Timer.RefreshInterval),
				tui.WithRecentTimes(cfg.Display.RecentTimes),
				tui.WithTimesWidth(cfg.Display.TimesWidth),
			)

			// A signal cancels the TUI without going through its quit key,
			// so the session is saved here once the program has stopped.
			runner := func(ctx context.Context) error {
				err := ui.Run(ctx)
				if ctx.Err() != nil {
					if qerr := a.Quit(context.Background()); qerr != nil {
						err = errors.Join(err, qerr)
					}
				}
				return err
			}

			tuiLog.Logger.Info("timer started", "log_file", tuiLog.FilePath, "storage", cfg.Storage.Path)
			return shutdown.Run(cmd.Context(), tuiLog.Logger, shutdownTimeout, runner, nil)
		},
	}
}

func (c *cli) scrambleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Print random scrambles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, puzzle, err := c.loadConfig()
			if err != nil {
				return err
			}

			n := c.v.GetInt(FlagCount)
			if n < 1 {
				return fmt.Errorf("--%s must be at least 1, got %d", FlagCount, n)
			}

			s := scramble.New(nil)
			for range n {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.Generate(puzzle))
			}
			return nil
		},
	}
	cmd.Flags().IntP(FlagCount, "n", 1, "Number of scrambles")
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = c.v.BindPFlag(f.Name, f)
	})
	return cmd
}

func (c *cli) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a solve timed elsewhere",
		Long: `Record a solve timed elsewhere.

--time accepts seconds (12.34) or a Go duration (1m5.2s). With --penalty +2
the two seconds are added to the given time. A DNF takes no time.
Without --scramble a new scramble is generated and recorded with the solve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, puzzle, err := c.loadConfig()
			if err != nil {
				return err
			}

			sv, err := buildManualSolve(
				c.v.GetString(FlagTime),
				c.v.GetString(FlagPenalty),
				c.v.GetString(FlagScramble),
				puzzle,
			)
			if err != nil {
				return err
			}

			a, store, err := openApp(cmd.Context(), cfg, puzzle, c.logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := a.Record(cmd.Context(), sv); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (%d solves)\n",
				tui.FormatSolve(sv), a.Session().Len())
			return nil
		},
	}
	cmd.Flags().String(FlagTime, "", "Solve time, e.g. 12.34 or 1m5.2s")
	cmd.Flags().String(FlagPenalty, "", "Penalty: +2 or dnf")
	cmd.Flags().String(FlagScramble, "", "Scramble the solve was done on")
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = c.v.BindPFlag(f.Name, f)
	})
	return cmd
}

// buildManualSolve turns add flags into a Solve. Plus2 adds the penalty to
// the given time; the solve errors for a DNF with a time, or no time without
// one, come from solve.Build.
func buildManualSolve(timeArg, penaltyArg, scrambleArg string, puzzle scramble.Puzzle) (solve.Solve, error) {
	penalty, err := solve.ParsePenalty(penaltyArg)
	if err != nil {
		return solve.Solve{}, err
	}

	scr := strings.Join(strings.Fields(scrambleArg), " ")
	if scr == "" {
		scr = scramble.Generate(puzzle)
	} else if puzzle == scramble.Cube3x3 {
		if err := scramble.Validate3x3(scr); err != nil {
			return solve.Solve{}, fmt.Errorf("--%s: %w", FlagScramble, err)
		}
	}

	var t *time.Duration
	if timeArg != "" {
		d, err := parseSolveTime(timeArg)
		if err != nil {
			return solve.Solve{}, fmt.Errorf("--%s: %w", FlagTime, err)
		}
		if penalty == solve.Plus2 {
			// parseSolveTime caps d at maxSolveTime.
			d += solve.Plus2Duration
		}
		t = &d
	}

	return solve.Build(scr, t, penalty)
}

// maxSolveTime leaves room to add a Plus2 penalty without overflowing.
const maxSolveTime = time.Duration(math.MaxInt64) - solve.Plus2Duration

// parseSolveTime accepts plain seconds ("12.34") or a Go duration ("1m5s").
// Seconds are rounded to the millisecond. Times above maxSolveTime are
// rejected.
func parseSolveTime(s string) (time.Duration, error) {
	var d time.Duration
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		ms := math.Round(secs * 1000)
		if math.IsNaN(ms) || math.IsInf(ms, 0) || ms > float64(maxSolveTime/time.Millisecond) {
			return 0, fmt.Errorf("time %q out of range", s)
		}
		if ms <= 0 {
			return 0, fmt.Errorf("time must be positive, got %q", s)
		}
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		if d > maxSolveTime {
			return 0, fmt.Errorf("time %q out of range", s)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("time must be positive, got %q", s)
	}
	return d, nil
}

func (c *cli) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the solves in the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, puzzle, err := c.loadConfig()
			if err != nil {
				return err
			}
			a, store, err := openApp(cmd.Context(), cfg, puzzle, c.logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			asJSON, _ := cmd.Flags().GetBool(FlagJSON)
			return writeSolves(cmd.OutOrStdout(), a.Session().Solves(), asJSON)
		},
	}
	cmd.Flags().Bool(FlagJSON, false, "Output solves as JSON")
	return cmd
}

// writeSolves prints solves one per line, or as the stored records in JSON.
func writeSolves(w io.Writer, solves []solve.Solve, asJSON bool) error {
	if asJSON {
		records := make([]storage.Record, len(solves))
		for i, s := range solves {
			records[i] = storage.NewRecord(s)
		}
		return writeJSON(w, records)
	}

	if len(solves) == 0 {
		_, _ = fmt.Fprintln(w, "No solves yet")
		return nil
	}
	for i, s := range solves {
		_, _ = fmt.Fprintf(w, "%4d. %-12s %s\n", i+1, tui.FormatSolve(s), s.Scramble())
	}
	return nil
}

func (c *cli) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, puzzle, err := c.loadConfig()
			if err != nil {
				return err
			}
			a, store, err := openApp(cmd.Context(), cfg, puzzle, c.logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			asJSON, _ := cmd.Flags().GetBool(FlagJSON)
			return writeSummary(cmd.OutOrStdout(), a.Summary(), asJSON)
		},
	}
	cmd.Flags().Bool(FlagJSON, false, "Output statistics as JSON")
	return cmd
}

// writeSummary prints a stats summary in human-readable form or as JSON.
func writeSummary(w io.Writer, sum stats.Summary, asJSON bool) error {
	if asJSON {
		return writeJSON(w, sum)
	}

	optional := func(d *time.Duration, fallback string) string {
		if d == nil {
			return fallback
		}
		return tui.FormatTime(*d)
	}

	_, _ = fmt.Fprintf(w, "Solves: %d\n", sum.Count)
	_, _ = fmt.Fprintf(w, "DNF: %d\n", sum.DNFs)
	_, _ = fmt.Fprintf(w, "Mean: %s\n", optional(sum.Mean, "DNF"))
	_, _ = fmt.Fprintf(w, "Std dev: %s\n", optional(sum.StdDev, "-"))
	_, _ = fmt.Fprintf(w, "Best: %s\n", optional(sum.Best, "-"))
	_, _ = fmt.Fprintf(w, "Worst: %s\n", optional(sum.Worst, "-"))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
