// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and a per-session child logger used throughout
// the go-pass-vault application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
//
// The terminal is owned by the interactive menu, so the application never
// logs to stdout or stderr: records go to a file, or nowhere.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// New constructs a *Logger writing JSON records to w.
//
// The logger is configured with:
//   - a "role" field set to role;
//   - a timestamp on every record;
//   - a "func" caller field holding the fully-qualified function name.
//
// level is parsed with zerolog.ParseLevel; an unknown level falls back to
// Info.
func New(w io.Writer, role, level string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// NewClientLogger opens (or creates) the log file at path and returns a
// logger appending to it. The parent directory is created with 0700
// permissions. If the file cannot be opened the returned logger discards
// everything.
func NewClientLogger(role, path, level string) *Logger {
	if path == "" {
		return Nop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Nop()
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}

	l := New(logFile, role, level)
	l.closer = logFile
	return l
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithSession returns a child logger tagged with the session identifier.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{Logger: l.With().Str("session", id).Logger()}
}
