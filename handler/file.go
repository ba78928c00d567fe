package handler

import (
	"bufio"
	"bytes"
	"os"
	"sync"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/formatter"
)

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Path of the log file, opened for append and created if missing
	Path string
	// Formatter to use (default: TextFormatter without color)
	Formatter formatter.Formatter
	// BufferSize for the underlying bufio.Writer (default: 4096)
	BufferSize int
}

// FileHandler writes formatted entries synchronously to a file
// through a buffered writer. Close flushes the buffer.
type FileHandler struct {
	mu     sync.Mutex
	file   *os.File
	w      *bufio.Writer
	fmt    formatter.Formatter
	buf    bytes.Buffer
	stats  *Stats
	closed bool
}

// NewFileHandler creates a new file handler.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	h := &FileHandler{
		file:  file,
		w:     bufio.NewWriterSize(file, cfg.BufferSize),
		fmt:   cfg.Formatter,
		stats: NewStats(),
	}
	h.buf.Grow(256)
	return h, nil
}

// Handle formats and writes an entry.
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.buf.Reset()
	h.fmt.Format(entry, &h.buf)
	_, err := h.w.Write(h.buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementWriteErrors()
		return err
	}
	h.stats.IncrementEmitted(entry.Level)
	return nil
}

// Flush writes buffered output to the file.
func (h *FileHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	return h.w.Flush()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes buffered output and closes the file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	flushErr := h.w.Flush()
	closeErr := h.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
