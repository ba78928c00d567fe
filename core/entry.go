package core

import (
	"sync"
	"time"
)

// Entry represents a single log line with all its metadata.
// Namespace is the fully resolved namespace of the call site
// (the logger's default namespace joined with any Named segments).
type Entry struct {
	Time      time.Time
	Level     Level
	Namespace string
	Message   string
	Fields    []Field
}

// entryPool reduces allocations on the emit path. Suppressed calls
// never touch the pool.
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry retrieves a cleared Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Namespace = ""
	e.Message = ""
	entryPool.Put(e)
}
