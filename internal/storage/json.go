package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/npratt/cube/internal/session"
)

// CurrentFileVersion is the session file format version.
// Increment this when making incompatible changes to the file layout.
const CurrentFileVersion = 1

// sessionFile is the on-disk layout of a JSONStore.
type sessionFile struct {
	Version   int       `json:"version"`
	Solves    []Record  `json:"solves"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONStore keeps the session in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path. The file and its
// directory are created on first save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the session file. A missing file yields an empty session.
// A corrupt or incompatible file is backed up and an empty session is
// returned. A record that fails solve validation is an error.
func (s *JSONStore) Load(_ context.Context) (*session.Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return session.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var file sessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.backup(".corrupt", "session file corrupted", slog.Any("error", err))
		return session.New(), nil
	}

	if file.Version != CurrentFileVersion {
		s.backup(".bak", "incompatible session file version",
			slog.Int("file_version", file.Version),
			slog.Int("current_version", CurrentFileVersion))
		return session.New(), nil
	}

	sess, err := sessionOf(file.Solves)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return sess, nil
}

// Save atomically writes the whole session.
func (s *JSONStore) Save(_ context.Context, sess *session.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sessionFile{
		Version:   CurrentFileVersion,
		Solves:    recordsOf(sess),
		UpdatedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename session file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open while loading or saving.
func (s *JSONStore) Close() error {
	return nil
}

// backup moves the current file aside so a fresh session can be written.
func (s *JSONStore) backup(suffix, msg string, attrs ...any) {
	backupPath := s.path + suffix
	attrs = append(attrs, slog.String("path", s.path))
	if err := os.Rename(s.path, backupPath); err != nil {
		slog.Warn(msg+", failed to backup", append(attrs, slog.Any("backup_error", err))...)
		return
	}
	slog.Warn(msg+", backed up and starting fresh", append(attrs, slog.String("backup", backupPath))...)
}
