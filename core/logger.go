package core

// Logger is any leveled logger the services can report through.
// Implementations may inspect args for known types (errors, request metadata,
// the acting user) and forward them to an error tracker.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
