package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirName is the directory under the XDG data home holding cube's files.
const DataDirName = "cube"

// DefaultDataDir returns $XDG_DATA_HOME/cube, falling back to
// ~/.local/share/cube.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, DataDirName), nil
}

// ResolvePaths fills in the data directory and converts relative storage and
// log paths to absolute paths under it.
func (c *Config) ResolvePaths() error {
	if c.Paths.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return err
		}
		c.Paths.DataDir = dir
	}

	dataDir, err := filepath.Abs(c.Paths.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	c.Paths.DataDir = dataDir

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dataDir, p)
	}

	c.Storage.Path = resolve(c.Storage.Path)
	c.Paths.Log = resolve(c.Paths.Log)
	return nil
}
