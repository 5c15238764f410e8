// Package logging provides structured logging functionality.
package logging

import "time"

// Logger provides structured logging
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// Info logs an info message
	Info(msg string, fields ...Field)

	// Warn logs a warning message
	Warn(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, fields ...Field)

	// WithFields returns a new logger with the given fields
	WithFields(fields ...Field) Logger

	// LogValidation records a validation event for a document
	LogValidation(file string, event string, data map[string]interface{})
}

// Field represents a key-value pair in a log entry
type Field struct {
	// Key is the field name
	Key string

	// Value is the field value
	Value interface{}
}

// F is a shorthand constructor for a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogEntry represents a structured log entry
type LogEntry struct {
	// Timestamp of the log entry
	Timestamp time.Time `json:"timestamp"`

	// Level of the log entry
	Level string `json:"level"`

	// Message is the log message
	Message string `json:"message"`

	// Fields contains additional context
	Fields map[string]interface{} `json:"fields,omitempty"`
}
