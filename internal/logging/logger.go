// Package logging provides leveled key-value logging for the loop runtime.
// It wraps the standard log package; bound context fields are kept in
// insertion order so that output is deterministic.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug is for verbose per-driver tracing.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for recoverable conditions such as degraded-mode loops.
	LevelWarn
	// LevelError is for significant errors.
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

type field struct {
	key   string
	value any
}

// Logger emits leveled messages with bound context fields.
type Logger struct {
	mu     sync.Mutex
	min    Level
	out    *log.Logger
	fields []field
}

var std = New()

// New creates a Logger writing to stderr at warn level.
func New() *Logger {
	return &Logger{
		min: LevelWarn,
		out: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Default returns the package-level logger.
func Default() *Logger {
	return std
}

// SetLevel sets the minimum level emitted by the logger.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = level
}

// SetOutput redirects the logger's output.
func (l *Logger) SetOutput(out *log.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
}

// With returns a child Logger carrying an additional context field. The
// receiver is not modified.
func (l *Logger) With(key string, value any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make([]field, len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)
	fields = append(fields, field{key, value})

	return &Logger{
		min:    l.min,
		out:    l.out,
		fields: fields,
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyVals ...any) { l.emit(LevelDebug, msg, keyVals) }

// Info logs at info level.
func (l *Logger) Info(msg string, keyVals ...any) { l.emit(LevelInfo, msg, keyVals) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyVals ...any) { l.emit(LevelWarn, msg, keyVals) }

// Error logs at error level.
func (l *Logger) Error(msg string, keyVals ...any) { l.emit(LevelError, msg, keyVals) }

func (l *Logger) emit(level Level, msg string, keyVals []any) {
	l.mu.Lock()
	min := l.min
	out := l.out
	bound := l.fields
	l.mu.Unlock()

	if level < min {
		return
	}

	var sb strings.Builder
	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	if len(bound) > 0 || len(keyVals) > 1 {
		sb.WriteString(" |")
	}
	for _, f := range bound {
		writeField(&sb, f.key, f.value)
	}
	for i := 0; i+1 < len(keyVals); i += 2 {
		key, ok := keyVals[i].(string)
		if !ok {
			continue
		}
		writeField(&sb, key, keyVals[i+1])
	}

	out.Print(sb.String())
}

func writeField(sb *strings.Builder, key string, value any) {
	sb.WriteString(" ")
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(formatValue(value))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\n") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		return fmt.Sprintf("%q", val.Error())
	default:
		return fmt.Sprint(v)
	}
}

// SetLevel sets the minimum level on the default logger.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// SetOutput redirects the default logger's output.
func SetOutput(out *log.Logger) {
	std.SetOutput(out)
}

// With returns a child of the default logger with an additional field.
func With(key string, value any) *Logger {
	return std.With(key, value)
}

// Debug logs at debug level using the default logger.
func Debug(msg string, keyVals ...any) {
	std.Debug(msg, keyVals...)
}

// Info logs at info level using the default logger.
func Info(msg string, keyVals ...any) {
	std.Info(msg, keyVals...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, keyVals ...any) {
	std.Warn(msg, keyVals...)
}

// Error logs at error level using the default logger.
func Error(msg string, keyVals ...any) {
	std.Error(msg, keyVals...)
}
