package logger

import (
	"sync"

	"github.com/seawatts/nslog/config"
	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/namespace"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Seed the shared registry and the default logger from the
	// environment. With nothing configured this enables only the
	// first-party namespace prefix and accepts every level.
	settings := config.FromEnv()
	settings.Apply(namespace.Default())

	defaultLogger = NewBuilder().
		WithHandler(settings.BuildHandler()).
		WithLevel(settings.MinLevel()).
		WithNamespace(config.DefaultNamespacePrefix).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Named returns a sub-namespaced logger derived from the default logger
func Named(sub string) *Logger {
	return Default().Named(sub)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}

// EnableNamespace registers a pattern on the default logger's registry
func EnableNamespace(pattern string) {
	Default().EnableNamespace(pattern)
}
