// Package logger provides leveled logging for the game.
// The terminal is owned by the renderer, so output normally goes to a file.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Logger provides leveled logging with a per-level prefix
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	closer      io.Closer
}

// New creates a logger writing all levels to w
func New(w io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	return &Logger{
		infoLogger:  log.New(w, "[SURVIVOR-INFO] ", flags),
		warnLogger:  log.New(w, "[SURVIVOR-WARN] ", flags),
		errorLogger: log.New(w, "[SURVIVOR-ERROR] ", flags),
	}
}

// OpenFile creates a logger appending to the file at path, creating parent directories
func OpenFile(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := New(f)
	l.closer = f
	return l, nil
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard)
}

// Close releases the underlying file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Info logs informational messages
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Warnf logs a formatted warning
func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Errorf logs a formatted error
func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Event logs a gameplay event with the scene that produced it
func (l *Logger) Event(eventType string, scene string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Scene:%s | %s", eventType, scene, details)
}
