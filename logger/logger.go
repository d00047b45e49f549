package logger

// Logger defines the interface for logging, args are key value pairs
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Info(msg string, args ...any)  {}
func (NopLogger) Debug(msg string, args ...any) {}
func (NopLogger) Warn(msg string, args ...any)  {}
func (NopLogger) Error(msg string, args ...any) {}

// OrNop returns l, or a NopLogger when l is nil
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}

	return l
}
