package handler

import (
	"sync/atomic"

	"github.com/seawatts/nslog/core"
)

// Stats tracks emission statistics with atomic counters.
type Stats struct {
	emittedDebug uint64
	emittedInfo  uint64
	emittedWarn  uint64
	emittedError uint64
	writeErrors  uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the emitted counter for a level
func (s *Stats) IncrementEmitted(level core.Level) {
	switch level {
	case core.DebugLevel:
		atomic.AddUint64(&s.emittedDebug, 1)
	case core.InfoLevel:
		atomic.AddUint64(&s.emittedInfo, 1)
	case core.WarnLevel:
		atomic.AddUint64(&s.emittedWarn, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.emittedError, 1)
	}
}

// IncrementWriteErrors atomically increments the write-error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.writeErrors, 1)
}

// Snapshot is a point-in-time copy of handler statistics.
type Snapshot struct {
	EmittedDebug uint64
	EmittedInfo  uint64
	EmittedWarn  uint64
	EmittedError uint64
	WriteErrors  uint64
}

// EmittedTotal returns the total emitted count across all levels.
func (s Snapshot) EmittedTotal() uint64 {
	return s.EmittedDebug + s.EmittedInfo + s.EmittedWarn + s.EmittedError
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		EmittedDebug: atomic.LoadUint64(&s.emittedDebug),
		EmittedInfo:  atomic.LoadUint64(&s.emittedInfo),
		EmittedWarn:  atomic.LoadUint64(&s.emittedWarn),
		EmittedError: atomic.LoadUint64(&s.emittedError),
		WriteErrors:  atomic.LoadUint64(&s.writeErrors),
	}
}
