package logging

// NopLogger discards all log output. It is the default logger for library
// consumers that do not configure logging.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message
func (l *NopLogger) Debug(msg string, args ...interface{}) {}

// Info discards the message
func (l *NopLogger) Info(msg string, args ...interface{}) {}

// Warn discards the message
func (l *NopLogger) Warn(msg string, args ...interface{}) {}

// Error discards the message
func (l *NopLogger) Error(msg string, args ...interface{}) {}

// WithModule returns the logger itself
func (l *NopLogger) WithModule(module string) Logger { return l }
