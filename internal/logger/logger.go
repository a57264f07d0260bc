package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// VerboseChecker interface for checking verbose state
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger provides structured logging with verbose support
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	writer         io.Writer
	zl             zerolog.Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// sharedOutput lets SetOutput redirect loggers that were created earlier
type sharedOutput struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *sharedOutput) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

var output = &sharedOutput{w: os.Stderr}

// SetOutput redirects every logger that has no writer of its own.
// The game points it at a log file, or io.Discard, while it owns the terminal.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	output.mu.Lock()
	defer output.mu.Unlock()
	output.w = w
}

// New creates a new logger instance
func New(component string, verboseChecker VerboseChecker) *Logger {
	return build(component, verboseChecker, output)
}

// NewWithCallback creates a new logger instance with a callback function
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return build(component, &callbackChecker{callback: verboseCheck}, output)
}

// NewWithWriter creates a logger that writes to w regardless of SetOutput
func NewWithWriter(component string, verboseCheck func() bool, w io.Writer) *Logger {
	return build(component, &callbackChecker{callback: verboseCheck}, w)
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return build(component, l.verboseChecker, l.writer)
}

func build(component string, verboseChecker VerboseChecker, w io.Writer) *Logger {
	if component == "" {
		component = "main"
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    true,
	}

	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		writer:         w,
		zl:             zerolog.New(console).With().Timestamp().Str("component", component).Logger(),
	}
}

// callbackChecker implements VerboseChecker with a callback function
type callbackChecker struct {
	callback func() bool
}

func (c *callbackChecker) IsVerbose() bool {
	if c.callback == nil {
		return false
	}
	return c.callback()
}

func (l *Logger) verbose() bool {
	return l.verboseChecker != nil && l.verboseChecker.IsVerbose()
}

// Debug logs debug messages (only when verbose=true)
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.verbose() {
		l.write(l.zl.Debug(), msg, nil, args...)
	}
}

// Info logs informational messages (only when verbose=true)
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.verbose() {
		l.write(l.zl.Info(), msg, nil, args...)
	}
}

// Warn logs warning messages (always shown)
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.write(l.zl.Warn(), msg, nil, args...)
}

// Error logs error messages (always shown)
func (l *Logger) Error(msg string, args ...interface{}) {
	l.write(l.zl.Error(), msg, nil, args...)
}

// DebugWithFields logs debug message with structured fields
func (l *Logger) DebugWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		l.write(l.zl.Debug(), msg, fields, args...)
	}
}

// InfoWithFields logs info message with structured fields
func (l *Logger) InfoWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		l.write(l.zl.Info(), msg, fields, args...)
	}
}

// WarnWithFields logs warning message with structured fields
func (l *Logger) WarnWithFields(msg string, fields []Field, args ...interface{}) {
	l.write(l.zl.Warn(), msg, fields, args...)
}

// ErrorWithFields logs error message with structured fields
func (l *Logger) ErrorWithFields(msg string, fields []Field, args ...interface{}) {
	l.write(l.zl.Error(), msg, fields, args...)
}

func (l *Logger) write(event *zerolog.Event, msg string, fields []Field, args ...interface{}) {
	for _, field := range fields {
		switch v := field.Value.(type) {
		case error:
			event = event.AnErr(field.Key, v)
		case string:
			event = event.Str(field.Key, v)
		case int:
			event = event.Int(field.Key, v)
		case bool:
			event = event.Bool(field.Key, v)
		case time.Duration:
			event = event.Str(field.Key, v.String())
		default:
			event = event.Interface(field.Key, v)
		}
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	event.Msg(msg)
}

// Helper functions for common field types
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Count(value int) Field {
	return Field{Key: "count", Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
