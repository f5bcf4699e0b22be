package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/hit-and-run/parameter"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(dir, false)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when debug=false")
		f.Close()
	}
	if slog.Default() != logger {
		t.Error("Expected the discard logger to become the default")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Log dir must not be created when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer f.Close()

	logger.Debug("test log message", "k", 1)

	info, err := os.Stat(filepath.Join(dir, parameter.LogFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected debug level to reach the log file")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, parameter.LogFileName)

	if err := os.WriteFile(logPath, make([]byte, parameter.LogMaxSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, f, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != parameter.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > parameter.LogMaxSize {
		t.Errorf("Expected new log file under %d bytes, got %d", parameter.LogMaxSize, info.Size())
	}
}
