package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/formatter"
)

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use. When nil, a TextFormatter is created with
	// color enabled iff Writer is a terminal.
	Formatter formatter.Formatter
}

// ConsoleHandler writes formatted entries synchronously to a writer.
// A single mutex serializes formatting and writing, so the handler
// is safe for concurrent use and lines never interleave.
type ConsoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	fmt    formatter.Formatter
	buf    bytes.Buffer
	stats  *Stats
	closed bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		tf := formatter.NewTextFormatter(formatter.Config{})
		tf.Color = IsTerminal(cfg.Writer)
		cfg.Formatter = tf
	}
	h := &ConsoleHandler{
		writer: cfg.Writer,
		fmt:    cfg.Formatter,
		stats:  NewStats(),
	}
	h.buf.Grow(256)
	return h
}

// IsTerminal reports whether w is an interactive terminal, which is
// when ANSI color output is safe to enable.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.buf.Reset()
	h.fmt.Format(entry, &h.buf)
	_, err := h.writer.Write(h.buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementWriteErrors()
		return err
	}
	h.stats.IncrementEmitted(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. Subsequent Handle calls are no-ops.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
