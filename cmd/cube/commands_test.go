package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/npratt/cube/internal/scramble"
	"github.com/npratt/cube/internal/solve"
	"github.com/npratt/cube/internal/stats"
	"github.com/npratt/cube/internal/storage"
)

// runCube executes the command tree with args against an isolated config
// and data directory and returns stdout.
func runCube(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	logLevel := &slog.LevelVar{}
	logger := SetupLoggerWithWriter(io.Discard, logLevel)

	cmd := newRootCmd(viper.New(), logger, logLevel)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCube(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "cube ") {
		t.Errorf("version output = %q", out)
	}
}

func TestScrambleCommand(t *testing.T) {
	out, err := runCube(t, "scramble", "-n", "3")
	if err != nil {
		t.Fatalf("scramble error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d scrambles, want 3", len(lines))
	}
	for _, l := range lines {
		if err := scramble.Validate3x3(l); err != nil {
			t.Errorf("invalid scramble %q: %v", l, err)
		}
	}
}

func TestScrambleCommandRejectsZero(t *testing.T) {
	if _, err := runCube(t, "scramble", "-n", "0"); err == nil {
		t.Error("scramble -n 0 succeeded, want error")
	}
}

// validScramble is a 20-move 3x3 scramble with no face repeated.
const validScramble = "R U R' U' F2 B L D2 R' U F B2 L' D R2 U' F' B L2 D'"

func TestAddListStats(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			data := filepath.Join(t.TempDir(), "session."+backend)
			common := []string{"--data-file", data, "--backend", backend}

			steps := [][]string{
				{"add", "--time", "10"},
				{"add", "--time", "18", "--penalty", "+2"},
				{"add", "--penalty", "dnf"},
				{"add", "--time", "30s", "--scramble", validScramble},
			}
			for _, s := range steps {
				if _, err := runCube(t, append(s, common...)...); err != nil {
					t.Fatalf("%v error = %v", s, err)
				}
			}

			out, err := runCube(t, append([]string{"list"}, common...)...)
			if err != nil {
				t.Fatalf("list error = %v", err)
			}
			for _, want := range []string{"10.00", "20.00+", "DNF", "30.00", validScramble} {
				if !strings.Contains(out, want) {
					t.Errorf("list output missing %q:\n%s", want, out)
				}
			}

			out, err = runCube(t, append([]string{"stats", "--json"}, common...)...)
			if err != nil {
				t.Fatalf("stats error = %v", err)
			}
			var sum stats.Summary
			if err := json.Unmarshal([]byte(out), &sum); err != nil {
				t.Fatalf("stats --json output is not JSON: %v\n%s", err, out)
			}
			if sum.Count != 4 || sum.DNFs != 1 {
				t.Errorf("Count, DNFs = %d, %d; want 4, 1", sum.Count, sum.DNFs)
			}
			if sum.Mean == nil || *sum.Mean != 20*time.Second {
				t.Errorf("Mean = %v, want 20s", sum.Mean)
			}
		})
	}
}

func TestListJSON(t *testing.T) {
	data := filepath.Join(t.TempDir(), "session.json")
	if _, err := runCube(t, "add", "--time", "7.48", "--data-file", data); err != nil {
		t.Fatalf("add error = %v", err)
	}

	out, err := runCube(t, "list", "--json", "--data-file", data)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	var records []storage.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("list --json output is not JSON: %v", err)
	}
	if len(records) != 1 || records[0].TimeMS == nil || *records[0].TimeMS != 7480 {
		t.Errorf("records = %+v, want one 7480ms solve", records)
	}
}

func TestListEmpty(t *testing.T) {
	data := filepath.Join(t.TempDir(), "session.json")
	out, err := runCube(t, "list", "--data-file", data)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "No solves yet") {
		t.Errorf("list output = %q", out)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	data := filepath.Join(t.TempDir(), "session.json")

	tests := []struct {
		name string
		args []string
	}{
		{"dnf with time", []string{"add", "--time", "10", "--penalty", "dnf"}},
		{"no time", []string{"add"}},
		{"bad penalty", []string{"add", "--time", "10", "--penalty", "+4"}},
		{"bad time", []string{"add", "--time", "fast"}},
		{"bad scramble", []string{"add", "--time", "10", "--scramble", "R R"}},
		{"short scramble", []string{"add", "--time", "10", "--scramble", "R U R' U'"}},
		{"huge time", []string{"add", "--time", "2e10"}},
		{"unknown backend", []string{"add", "--time", "10", "--backend", "csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCube(t, append(tt.args, "--data-file", data)...); err == nil {
				t.Error("add succeeded, want error")
			}
		})
	}
}

func TestBuildManualSolve(t *testing.T) {
	sv, err := buildManualSolve("12.34", "+2", "", scramble.Cube3x3)
	if err != nil {
		t.Fatalf("buildManualSolve() error = %v", err)
	}
	if got, _ := sv.Time(); got != 14340*time.Millisecond {
		t.Errorf("Time() = %v, want 14.34s", got)
	}
	if err := scramble.Validate3x3(sv.Scramble()); err != nil {
		t.Errorf("generated scramble invalid: %v", err)
	}

	_, err = buildManualSolve("10", "dnf", "", scramble.Cube3x3)
	if !errors.Is(err, solve.ErrTimeWithDNF) {
		t.Errorf("DNF with time error = %v, want ErrTimeWithDNF", err)
	}

	if got, _ := buildManualSolve("5", "", "  R U R' U'  F2 B L D2 R' U F B2 L' D R2 U' F' B L2 D' ", scramble.Cube3x3); got.Scramble() != validScramble {
		t.Errorf("Scramble() = %q, want whitespace normalised to %q", got.Scramble(), validScramble)
	}

	_, err = buildManualSolve("", "", "", scramble.Cube3x3)
	if !errors.Is(err, solve.ErrNoTimeWithoutDNF) {
		t.Errorf("no time error = %v, want ErrNoTimeWithoutDNF", err)
	}
}

func TestParseSolveTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"12.34", 12340 * time.Millisecond, false},
		{"7", 7 * time.Second, false},
		{"1m5.2s", 65200 * time.Millisecond, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"2e10", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Inf", 0, true},
		{"-1e30", 0, true},
		{"3000000h", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSolveTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSolveTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSolveTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSummary(&buf, stats.Summary{}, false); err != nil {
		t.Fatalf("writeSummary() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Mean: DNF") {
		t.Errorf("empty summary output = %q", buf.String())
	}
}
