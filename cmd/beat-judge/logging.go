package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "beat-judge.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the process logger and the open log file
// The terminal is owned by the HUD, so nothing is ever written to stdout or stderr
// Without debug all output is discarded and the file is nil
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(discard)
	if !debug {
		return discard, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return discard, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("beat-judge-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, f
}
