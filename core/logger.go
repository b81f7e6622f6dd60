package core

// Logger is any service that can record application events.
// args are alternating key/value pairs; an error value may be passed under the "error" key.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
