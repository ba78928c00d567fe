// Package logger is the public API of nslog. Most users only need
// to import this package.
//
// A Logger binds a namespace and a minimum severity. A call emits
// only when its severity clears the minimum AND the logger's
// namespace is active in the shared pattern registry, so an operator
// can silence or enable whole subsystems ("svc:*", "-svc:cache")
// without touching severity thresholds.
//
// Loggers are immutable after construction and safe for concurrent
// use; the registry they consult is the only shared mutable state
// and has a concurrency-safe interior. Named derives sub-namespaced
// children:
//
//	log := logger.New(logger.Config{Namespace: "app", MinLevel: "warn"})
//	dbLog := log.Named("db") // namespace "app:db"
//	dbLog.Warn("slow query", logger.Duration("took", d))
//
// The package seeds a default logger in init() from the
// NSLOG_LEVEL and NSLOG_NAMESPACES environment variables; with
// nothing configured, only first-party namespaces emit.
//
// Level and namespace checks happen before any allocation, so a
// filtered-out call costs an integer comparison plus one read-locked
// registry lookup.
package logger
