package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Log levels in increasing severity.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// StandardLogger writes structured log entries to a writer in either text
// or JSON format.
type StandardLogger struct {
	out    io.Writer
	level  string
	format string
	fields []Field
}

// NewLogger creates a logger writing to stderr.
func NewLogger(level, format string) *StandardLogger {
	if _, ok := levelRank[level]; !ok {
		level = LevelInfo
	}
	return &StandardLogger{
		out:    os.Stderr,
		level:  level,
		format: format,
	}
}

// NewLoggerTo creates a logger writing to the given writer.
func NewLoggerTo(w io.Writer, level, format string) *StandardLogger {
	l := NewLogger(level, format)
	l.out = w
	return l
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields ...Field) { l.log(LevelInfo, msg, fields) }

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields ...Field) { l.log(LevelWarn, msg, fields) }

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

// WithFields returns a new logger with the given fields attached to every
// entry.
func (l *StandardLogger) WithFields(fields ...Field) Logger {
	clone := *l
	clone.fields = append(append([]Field{}, l.fields...), fields...)
	return &clone
}

// LogValidation records a validation event for a document
func (l *StandardLogger) LogValidation(file string, event string, data map[string]interface{}) {
	fields := []Field{F("file", file), F("event", event)}
	for k, v := range data {
		fields = append(fields, F(k, v))
	}
	l.log(LevelInfo, "validation", fields)
}

func (l *StandardLogger) log(level, msg string, fields []Field) {
	if levelRank[level] < levelRank[l.level] {
		return
	}

	all := make(map[string]interface{}, len(l.fields)+len(fields))
	for _, f := range l.fields {
		all[f.Key] = f.Value
	}
	for _, f := range fields {
		all[f.Key] = f.Value
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   msg,
		Fields:    all,
	}

	if l.format == "json" {
		data, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(data))
		return
	}

	var sb strings.Builder
	sb.WriteString(entry.Timestamp.Format(time.RFC3339))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(level))
	sb.WriteString("] ")
	sb.WriteString(msg)

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, all[k])
	}
	fmt.Fprintln(l.out, sb.String())
}
