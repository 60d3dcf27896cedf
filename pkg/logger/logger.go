// Package logger provides the structured logger shared by the nodo
// commands.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger at warn level
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.WarnLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: level <= log.DebugLevel,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return NewWithLevel(io.Discard, log.FatalLevel)
}

// LevelFor maps the -v count and -q flag to a level.
func LevelFor(verbosity int, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbosity >= 2:
		return log.DebugLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(file, rootDir string) {
	l.Debug("config loaded",
		"file", file,
		"root_dir", rootDir)
}

// NodoRead logs a parsed nodo
func (l *Logger) NodoRead(path string, blocks int) {
	l.Debug("nodo read",
		"path", path,
		"blocks", blocks)
}

// NodoWritten logs a nodo written back to disk
func (l *Logger) NodoWritten(path string) {
	l.Info("nodo written",
		"path", path)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// Dump pretty prints v at debug level.
func (l *Logger) Dump(msg string, v any) {
	if l.GetLevel() > log.DebugLevel {
		return
	}
	pp.ColoringEnabled = false
	l.Debug(msg, "value", pp.Sprint(v))
}
