package benchmark

import (
	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/handler"
)

// noopHandler accepts every entry without formatting or I/O, so
// benchmarks measure only the filtering pipeline.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
