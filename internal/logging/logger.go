// Package logging provides the logging abstraction used by the expense tracker.
// Core packages depend on the Logger interface only; the CLI plugs in a logrus
// backed implementation and tests plug in MockLogger.
package logging

// Logger is the structured logger used across the application.
// Load and save failures of the expense store are reported through it.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger that attaches err to every entry
	WithError(err error) Logger

	// WithField returns a logger that attaches key=value to every entry
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger that attaches all fields to every entry
	WithFields(fields ...Field) Logger

	// Fatal logs and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted message and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
