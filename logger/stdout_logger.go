package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// StdOutLogger implements the Logger interface using charmbracelet/log
type StdOutLogger struct {
	logger *log.Logger
}

// NewStdOutLogger creates a new StdOutLogger writing info and above to stdout
func NewStdOutLogger() *StdOutLogger {
	return NewStdOutLoggerWithOptions(os.Stdout, log.InfoLevel)
}

// NewStdOutLoggerWithOptions creates a new StdOutLogger with the given writer
// and level, the CLI uses this to write to stderr at debug level
func NewStdOutLoggerWithOptions(w io.Writer, level log.Level) *StdOutLogger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "persons",
	})

	return &StdOutLogger{logger: logger}
}

var _ Logger = (*StdOutLogger)(nil)

func (l *StdOutLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *StdOutLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *StdOutLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *StdOutLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
