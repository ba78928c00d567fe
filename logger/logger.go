package logger

import (
	"fmt"
	"strings"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/handler"
	"github.com/seawatts/nslog/namespace"
)

// Logger binds a namespace and a minimum level to a handler. It is
// immutable after construction; the only shared mutable state it
// touches is the namespace registry it reads on every call.
type Logger struct {
	handler   handler.Handler
	level     core.Level
	namespace string
	registry  *namespace.Registry
	fields    []core.Field
}

// Config configures the New factory. Namespace is the logger's
// default namespace; MinLevel is a severity name ("debug", "info",
// "warn", "error", case-insensitive). An absent or unrecognized
// MinLevel means no minimum: every severity passes the level gate.
type Config struct {
	Namespace string
	MinLevel  string
	// Handler receives permitted entries (default: console)
	Handler handler.Handler
	// Registry overrides the process-wide registry (default: namespace.Default())
	Registry *namespace.Registry
}

// New creates a Logger from a Config.
func New(cfg Config) *Logger {
	b := NewBuilder().WithNamespace(cfg.Namespace)
	if level, ok := core.ParseLevel(cfg.MinLevel); ok {
		b.WithLevel(level)
	}
	if cfg.Handler != nil {
		b.WithHandler(cfg.Handler)
	} else {
		b.WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{}))
	}
	if cfg.Registry != nil {
		b.WithRegistry(cfg.Registry)
	}
	return b.Build()
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler   handler.Handler
	level     core.Level
	namespace string
	registry  *namespace.Registry
	fields    []core.Field
}

// NewBuilder creates a new logger builder. The zero level is
// DebugLevel, i.e. no minimum: with no explicit WithLevel every
// severity passes the level gate.
func NewBuilder() *Builder {
	return &Builder{
		level:    core.DebugLevel,
		registry: namespace.Default(),
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithNamespace sets the logger's default namespace
func (b *Builder) WithNamespace(ns string) *Builder {
	b.namespace = ns
	return b
}

// WithRegistry sets the namespace registry the logger consults
func (b *Builder) WithRegistry(r *namespace.Registry) *Builder {
	b.registry = r
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:   b.handler,
		level:     b.level,
		namespace: b.namespace,
		registry:  b.registry,
		fields:    b.fields,
	}
}

// Named returns a Logger scoped to a sub-namespace: the receiver's
// namespace and sub joined with ':'. An empty sub returns the
// receiver unchanged, so callers can pass through an optional
// namespace argument verbatim. Enabling "app:*" therefore activates
// every logger derived from a logger with namespace "app".
func (l *Logger) Named(sub string) *Logger {
	if sub == "" {
		return l
	}
	ns := sub
	if l.namespace != "" {
		ns = l.namespace + ":" + sub
	}
	clone := *l
	clone.namespace = ns
	return &clone
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Namespace returns the logger's fully resolved namespace.
func (l *Logger) Namespace() string { return l.namespace }

// EnableNamespace registers a pattern on the logger's registry,
// routing to Disable when the pattern carries a leading '-'.
func (l *Logger) EnableNamespace(pattern string) {
	if l.registry == nil {
		return
	}
	if strings.HasPrefix(pattern, "-") {
		l.registry.Disable(pattern)
		return
	}
	l.registry.Enable(pattern)
}

// Active reports whether a call on this logger would currently pass
// the namespace gate.
func (l *Logger) Active() bool {
	return l.registry == nil || l.registry.IsActive(l.namespace)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check first: a suppressed call costs one comparison
	// plus at most one registry lookup, and allocates nothing.
	if level < l.level {
		return
	}
	l.log(level, msg, fields)
}

// permitted runs the namespace gate. It is the second and last check
// before any allocation or formatting happens.
func (l *Logger) permitted() bool {
	if l.handler == nil {
		return false
	}
	return l.registry == nil || l.registry.IsActive(l.namespace)
}

// log emits after the level gate has passed.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if !l.permitted() {
		return
	}
	l.emit(level, msg, fields)
}

// emit assumes both gates have passed.
func (l *Logger) emit(level core.Level, msg string, fields []core.Field) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Namespace = l.namespace
	entry.Message = msg
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	// Handlers are synchronous, the entry can be recycled as soon
	// as Handle returns regardless of the write outcome.
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Debugf logs a debug message with formatting. Both gates run before
// Sprintf so suppressed calls do not pay for formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level || !l.permitted() {
		return
	}
	l.emit(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level || !l.permitted() {
		return
	}
	l.emit(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level || !l.permitted() {
		return
	}
	l.emit(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level || !l.permitted() {
		return
	}
	l.emit(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
