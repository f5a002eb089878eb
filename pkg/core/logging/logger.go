// ============================================================================
// toolctl - Foundry Lab Tool Control CLI
// ============================================================================
//
// Package:     logging
// Description: Structured key-value logging for client components
// Author:      Foundry Automation
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string level to a Level. Unknown input maps to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLevel            = LevelInfo
	defaultOutput io.Writer = os.Stderr
)

// SetDefaultLevel changes the level applied to loggers created afterwards.
func SetDefaultLevel(level Level) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLevel = level
}

// SetDefaultOutput changes the writer applied to loggers created afterwards.
func SetDefaultOutput(w io.Writer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOutput = w
}

// Logger writes leveled, named log lines with key-value fields.
type Logger struct {
	name   string
	level  Level
	output io.Writer
	mu     sync.Mutex
}

// New creates a logger with the package defaults.
func New(name string) *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return &Logger{name: name, level: defaultLevel, output: defaultOutput}
}

// NewWithOutput creates a logger writing to the given writer.
func NewWithOutput(name string, level Level, w io.Writer) *Logger {
	return &Logger{name: name, level: level, output: w}
}

// WithLevel returns a copy of the logger with the given minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{name: l.name, level: level, output: l.output}
}

// Debug logs a debug message with key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message with key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *Logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, " %-5s [%s] %s", strings.ToUpper(level.String()), l.name, msg)

	for _, kv := range formatFields(keysAndValues...) {
		b.WriteByte(' ')
		b.WriteString(kv)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.output, b.String())
}

// formatFields renders key-value pairs as key=value tokens. Dangling keys
// and non-string keys are skipped rather than reported.
func formatFields(keysAndValues ...interface{}) []string {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make([]string, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s=%v", key, keysAndValues[i+1]))
	}
	return fields
}

// Fields is a map form used when callers accumulate context before logging.
type Fields map[string]interface{}

// Pairs flattens the fields to a deterministic key-value slice.
func (f Fields) Pairs() []interface{} {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]interface{}, 0, len(f)*2)
	for _, k := range keys {
		pairs = append(pairs, k, f[k])
	}
	return pairs
}
