package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// isolate points XDG lookups at an empty temp dir so a developer's real
// config does not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Timer.RefreshInterval != 16*time.Millisecond {
		t.Errorf("Timer.RefreshInterval = %v, want 16ms", cfg.Timer.RefreshInterval)
	}
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendJSON)
	}
}

func TestLoadConfig_GlobalFile(t *testing.T) {
	tmp := isolate(t)

	dir := filepath.Join(tmp, "config", GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	configContent := `
timer:
  refresh_interval: 50ms
storage:
  backend: sqlite
  path: solves.db
display:
  recent_times: 12
`
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Timer.RefreshInterval != 50*time.Millisecond {
		t.Errorf("Timer.RefreshInterval = %v, want 50ms", cfg.Timer.RefreshInterval)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendSQLite)
	}
	if cfg.Storage.Path != "solves.db" {
		t.Errorf("Storage.Path = %q, want solves.db", cfg.Storage.Path)
	}
	if cfg.Display.RecentTimes != 12 {
		t.Errorf("Display.RecentTimes = %d, want 12", cfg.Display.RecentTimes)
	}
	// Untouched sections keep their defaults.
	if cfg.LogRotation.MaxBackups != 3 {
		t.Errorf("LogRotation.MaxBackups = %d, want 3", cfg.LogRotation.MaxBackups)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tmp := isolate(t)

	configPath := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(configPath, []byte("puzzle: 3x3x3\npaths:\n  data_dir: /tmp/cube-test\n"), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", configPath)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Puzzle != "3x3x3" {
		t.Errorf("Puzzle = %q, want 3x3x3", cfg.Puzzle)
	}
	if cfg.Paths.DataDir != "/tmp/cube-test" {
		t.Errorf("Paths.DataDir = %q, want /tmp/cube-test", cfg.Paths.DataDir)
	}
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	tmp := isolate(t)

	v := viper.New()
	v.Set("config", filepath.Join(tmp, "missing.yaml"))

	if _, err := LoadConfig(v); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	tmp := isolate(t)

	configPath := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("storage:\n  backend: csv\n"), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", configPath)

	if _, err := LoadConfig(v); err == nil {
		t.Error("expected error for unknown storage backend")
	}
}

func TestLoadConfig_ViperOverride(t *testing.T) {
	isolate(t)

	v := viper.New()
	v.Set("storage.backend", BackendSQLite)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendSQLite)
	}
}
