// Package console provides a logger backend that writes to the terminal
// through charmbracelet/log.
package console

import (
	"os"

	"github.com/charmbracelet/log"
)

// ConsoleLogger is the terminal backend for the logger facade.
type ConsoleLogger struct {
	backend *log.Logger
}

// ConsoleLoggerParams configures console output. Debug lowers the level so
// pipeline trace output (raw model responses, per-article progress) becomes
// visible.
type ConsoleLoggerParams struct {
	Debug bool
}

// NewConsoleLogger builds a stderr logger with timestamps enabled.
func NewConsoleLogger(params ConsoleLoggerParams) *ConsoleLogger {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}

	return &ConsoleLogger{
		backend: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
		}),
	}
}

// Log writes at the default level.
func (c *ConsoleLogger) Log(message string, keyvals ...any) {
	c.backend.Print(message, keyvals...)
}

// Info writes at INFO level.
func (c *ConsoleLogger) Info(message string, keyvals ...any) {
	c.backend.Info(message, keyvals...)
}

// Warn writes at WARN level.
func (c *ConsoleLogger) Warn(message string, keyvals ...any) {
	c.backend.Warn(message, keyvals...)
}

// Error writes at ERROR level.
func (c *ConsoleLogger) Error(message string, keyvals ...any) {
	c.backend.Error(message, keyvals...)
}

// Debug writes at DEBUG level.
func (c *ConsoleLogger) Debug(message string, keyvals ...any) {
	c.backend.Debug(message, keyvals...)
}

// Fatal writes at FATAL level and exits.
func (c *ConsoleLogger) Fatal(message string, keyvals ...any) {
	c.backend.Fatal(message, keyvals...)
}
