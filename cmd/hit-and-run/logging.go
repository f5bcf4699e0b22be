package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/hit-and-run/parameter"
)

// setupLogging returns a logger writing to dir/hit-and-run.log when debug is set
// The terminal is owned by the screen, so nothing is ever logged to stdout or stderr
// An existing file over parameter.LogMaxSize is rotated to a timestamped name first
func setupLogging(dir string, debug bool) (*slog.Logger, *os.File, error) {
	if !debug {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return logger, nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	logPath := filepath.Join(dir, parameter.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > parameter.LogMaxSize {
		ext := filepath.Ext(parameter.LogFileName)
		base := parameter.LogFileName[:len(parameter.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("failed to rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, f, nil
}
