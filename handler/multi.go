package handler

import "github.com/seawatts/nslog/core"

// MultiHandler fans each entry out to several handlers, e.g. console
// plus file. Handle returns the first error encountered but still
// delivers the entry to every handler.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a handler that delegates to all given handlers.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle delivers the entry to every wrapped handler.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var firstErr error
	for _, h := range m.handlers {
		if err := h.Handle(entry); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes every wrapped handler, returning the first error.
func (m *MultiHandler) Close() error {
	var firstErr error
	for _, h := range m.handlers {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
