package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger. The first call initializes it with the
// given level and console output; later calls return the same instance.
func Get(level string) *Logger {
	return Init(level, ConsoleFormat)
}

// Init is Get with an explicit encoding. Only the first call of Init or Get
// takes effect.
func Init(level, format string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, format)
	})
	return globalLogger
}
