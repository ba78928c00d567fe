package handler

import "github.com/seawatts/nslog/core"

// Handler is the write sink the logger hands permitted entries to.
// The logger performs the level and namespace checks, so a Handler
// sees exactly one Handle call per permitted log call and none for
// suppressed calls.
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is an optional interface for handlers that track
// emission statistics.
type StatsProvider interface {
	Stats() Snapshot
}
