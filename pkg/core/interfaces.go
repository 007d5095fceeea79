package core

// Logger interface for progress and diagnostic output from the rendering core.
// It is satisfied by the leveled loggers of pkg/log.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Debugf discards the message
func (NopLogger) Debugf(format string, args ...interface{}) {}

// Infof discards the message
func (NopLogger) Infof(format string, args ...interface{}) {}
