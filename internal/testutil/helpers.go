package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npratt/cube/internal/solve"
)

// WriteFile writes content to a file in the given directory.
// It creates parent directories as needed and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadFile reads a file and returns its contents.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// FileExists checks if a file exists.
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

// MustSolve builds a solve with a time of ms milliseconds, or no time when
// ms is negative. It fails the test if the combination is invalid.
func MustSolve(t *testing.T, scramble string, ms int64, penalty solve.Penalty) solve.Solve {
	t.Helper()
	var d *time.Duration
	if ms >= 0 {
		v := time.Duration(ms) * time.Millisecond
		d = &v
	}
	sv, err := solve.Build(scramble, d, penalty)
	if err != nil {
		t.Fatalf("solve.Build(%q, %d, %v): %v", scramble, ms, penalty, err)
	}
	return sv
}
