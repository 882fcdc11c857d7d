package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir failed: %v", err)
	}
	if want := filepath.Join("/xdg/data", DataDirName); dir != want {
		t.Errorf("DefaultDataDir() = %q, want %q", dir, want)
	}
}

func TestDefaultDataDir_Home(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/cuber")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir failed: %v", err)
	}
	if want := filepath.Join("/home/cuber", ".local", "share", DataDirName); dir != want {
		t.Errorf("DefaultDataDir() = %q, want %q", dir, want)
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/data/cube"
	cfg.Paths.Log = "/var/log/cube.log"

	if err := cfg.ResolvePaths(); err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}

	if cfg.Storage.Path != "/data/cube/sessions.json" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Paths.Log != "/var/log/cube.log" {
		t.Errorf("absolute Paths.Log changed to %q", cfg.Paths.Log)
	}
}

func TestResolvePaths_DefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")

	cfg := Default()
	if err := cfg.ResolvePaths(); err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	if cfg.Paths.DataDir != "/xdg/cube" {
		t.Errorf("Paths.DataDir = %q, want /xdg/cube", cfg.Paths.DataDir)
	}
	if cfg.Paths.Log != "/xdg/cube/cube.log" {
		t.Errorf("Paths.Log = %q, want /xdg/cube/cube.log", cfg.Paths.Log)
	}
}
