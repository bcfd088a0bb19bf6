// Package logging builds the logrus loggers used across the application.
//
// The TUI owns the terminal, so the interactive logger always writes to a
// file. Commands that print to stdout use Console.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jask/gestion/internal/crud"
)

// ParseLevel maps config names to logrus levels. Unknown names fall back to
// error; "silent" disables output.
func ParseLevel(name string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

// File opens (appending) the log file at path. The caller closes the
// returned file. An empty path yields Discard and a nil file.
func File(level logrus.Level, path string) (*os.File, *logrus.Logger, error) {
	if path == "" {
		return nil, Discard(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	return f, l, nil
}

func Console(level logrus.Level, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Audit returns a bus subscriber that records every committed change.
func Audit(log logrus.FieldLogger) func(*crud.Event) {
	return func(e *crud.Event) {
		log.WithFields(logrus.Fields{
			"event_id": e.ID.String(),
			"kind":     e.Kind,
			"change":   string(e.Change),
			"key":      e.Key,
		}).Info("audit")
	}
}
