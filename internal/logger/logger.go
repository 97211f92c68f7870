// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger configures the application-wide structured logger. Logs go
// to an XDG state file and, outside the TUI, to stderr as well.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var defaultLogger *slog.Logger

// parseLogLevel maps a level name to a slog level. Unknown or empty names
// fall back to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logLevel returns the configured minimum level, read from the
// CIPHERBOX_LOG_LEVEL environment variable.
func logLevel() slog.Level {
	return parseLogLevel(os.Getenv("CIPHERBOX_LOG_LEVEL"))
}

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "cipherbox", "app.log"), nil
}

func setupLogging(logToFile, logToStderr bool) {
	var writers []io.Writer

	if logToFile {
		logFilePath, err := getLogFilePath()
		if err == nil {
			if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err == nil {
				file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
				if err == nil {
					writers = append(writers, file)
				} else {
					fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, err)
				}
			}
		}
	}
	if logToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = os.Stderr
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	// JSON handler for structured logging consistency.
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: logLevel()})
	defaultLogger = slog.New(handler)
}

// InitLogger initializes the logger based on the execution mode. Under the
// TUI, stderr logging is suppressed so log lines do not corrupt the screen.
// It MUST be called once at the beginning of the application.
func InitLogger(isTUI bool) {
	setupLogging(true, !isTUI)
}

// SetLogger replaces the default logger instance, mainly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		InitLogger(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...any) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}
