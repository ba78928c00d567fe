package namespace

import "sync"

// Registry is a concurrency-safe set of compiled Patterns. Reads
// vastly outnumber writes (IsActive runs on every log call, Enable
// and Disable typically only at startup), so the interior is a
// sync.RWMutex: concurrent readers never block each other and a
// writer in progress can never expose a partially updated list.
type Registry struct {
	mu       sync.RWMutex
	patterns []Pattern
}

// NewRegistry creates an empty Registry. Most callers want Default
// instead; separate registries exist for tests and for embedding
// applications that need isolated pattern sets.
func NewRegistry() *Registry {
	return &Registry{}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide Registry shared by every Logger
// that does not override it. Initialized on first use, lives for the
// process lifetime.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Enable compiles raw and appends it to the pattern set. A leading
// '-' still yields a disabling pattern, so Enable doubles as the
// router for mixed pattern lists. Empty or malformed patterns are
// ignored. Registering a pattern that is already present is a no-op.
func (r *Registry) Enable(raw string) {
	p, ok := Compile(raw)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.patterns {
		if existing.raw == p.raw {
			return
		}
	}
	r.patterns = append(r.patterns, p)
}

// Disable registers a disabling pattern for raw. The leading '-' is
// implied and added when missing.
func (r *Registry) Disable(raw string) {
	if raw == "" {
		return
	}
	if raw[0] != '-' {
		raw = "-" + raw
	}
	r.Enable(raw)
}

// IsActive reports whether the namespace should emit output. Among
// all patterns whose predicate matches, the most specific one decides;
// when an enabling and a disabling pattern tie on specificity, the
// disabling one wins. No matching pattern means inactive.
func (r *Registry) IsActive(ns string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := -1
	active := false
	for _, p := range r.patterns {
		if !p.Matches(ns) {
			continue
		}
		switch {
		case p.specificity > best:
			best = p.specificity
			active = !p.disable
		case p.specificity == best && p.disable:
			active = false
		}
	}
	return best >= 0 && active
}

// Reset clears every registered pattern. Used by configuration reload
// and test setup; normal operation is append-only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = nil
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}
