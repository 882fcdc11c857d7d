// Package config provides configuration types and defaults for cube.
package config

import "time"

// Config holds all configuration for cube.
type Config struct {
	Puzzle      string            `yaml:"puzzle" mapstructure:"puzzle"`
	Timer       TimerConfig       `yaml:"timer" mapstructure:"timer"`
	Storage     StorageConfig     `yaml:"storage" mapstructure:"storage"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
	Display     DisplayConfig     `yaml:"display" mapstructure:"display"`
}

// TimerConfig holds timer display settings.
type TimerConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"` // Redraw interval while the TUI is open
}

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// StorageConfig selects where the session is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path" mapstructure:"path"`       // Relative paths resolve against Paths.DataDir
}

// PathsConfig holds the data directory and log file location.
type PathsConfig struct {
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"` // Empty means $XDG_DATA_HOME/cube
	Log     string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for the TUI log file rotation.
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// DisplayConfig holds TUI layout settings.
type DisplayConfig struct {
	RecentTimes int `yaml:"recent_times" mapstructure:"recent_times"` // Times plotted in the stats sparkline
	TimesWidth  int `yaml:"times_width" mapstructure:"times_width"`   // Width of the times pane
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Puzzle: "3x3",
		Timer: TimerConfig{
			RefreshInterval: 16 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    "sessions.json",
		},
		Paths: PathsConfig{
			DataDir: "",
			Log:     "cube.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Display: DisplayConfig{
			RecentTimes: 30,
			TimesWidth:  36,
		},
	}
}
