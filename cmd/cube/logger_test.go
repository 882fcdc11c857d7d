package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npratt/cube/internal/config"
)

func TestSetupTUILogger_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "cube.log")

	result, err := SetupTUILogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	if err != nil {
		t.Fatalf("SetupTUILogger failed: %v", err)
	}
	defer func() { _ = result.Close() }()

	if result.FilePath != logPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, logPath)
	}

	result.Logger.Info("test message", "key", "value")
	_ = result.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "test message") {
		t.Errorf("log file should contain 'test message', got: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Errorf("log file should contain key=value, got: %s", content)
	}
}

func TestSetupTUILogger_AppendsToExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cube.log")
	if err := os.WriteFile(logPath, []byte("existing content\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result, err := SetupTUILogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	if err != nil {
		t.Fatalf("SetupTUILogger failed: %v", err)
	}
	result.Logger.Info("new message")
	_ = result.Close()

	content, _ := os.ReadFile(logPath)
	if !strings.Contains(string(content), "existing content") {
		t.Error("should preserve existing content")
	}
	if !strings.Contains(string(content), "new message") {
		t.Error("should append new message")
	}
}

func TestSetupTUILogger_FailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result, err := SetupTUILogger(filepath.Join(blocker, "cube.log"), slog.LevelInfo, config.Default().LogRotation)
	if err == nil {
		_ = result.Close()
		t.Error("expected error when the log directory is a file")
	}
}

func TestSetupTUILogger_RespectsLogLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cube.log")

	result, err := SetupTUILogger(logPath, slog.LevelWarn, config.Default().LogRotation)
	if err != nil {
		t.Fatalf("SetupTUILogger failed: %v", err)
	}
	result.Logger.Info("info message")
	result.Logger.Warn("warn message")
	_ = result.Close()

	content, _ := os.ReadFile(logPath)
	if strings.Contains(string(content), "info message") {
		t.Error("INFO message should be filtered out at WARN level")
	}
	if !strings.Contains(string(content), "warn message") {
		t.Error("WARN message should appear")
	}
}

func TestSetupLoggerWithWriter_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	logger := SetupLoggerWithWriter(&buf, slog.LevelInfo)
	logger.Info("test message", "foo", "bar")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("output should contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"foo":"bar"`) {
		t.Errorf("output should contain foo=bar, got: %s", output)
	}
}
