package promhandler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/handler"
)

// PromHandler wraps another handler and counts emitted lines by
// namespace and level on a Prometheus CounterVec. It adds no
// filtering of its own; suppressed calls never reach it.
type PromHandler struct {
	next    handler.Handler
	emitted *prometheus.CounterVec
}

// New creates a PromHandler delegating to next and registering its
// counter on reg. Registration panics on duplicate collectors the
// same way promauto does, so create at most one per registry.
func New(next handler.Handler, reg prometheus.Registerer) *PromHandler {
	emitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nslog_lines_emitted_total",
			Help: "Total number of log lines emitted, by namespace and level",
		},
		[]string{"namespace", "level"},
	)
	reg.MustRegister(emitted)
	return &PromHandler{next: next, emitted: emitted}
}

// Handle counts the entry and delegates to the wrapped handler.
func (h *PromHandler) Handle(entry *core.Entry) error {
	h.emitted.WithLabelValues(entry.Namespace, entry.Level.String()).Inc()
	return h.next.Handle(entry)
}

// Close closes the wrapped handler.
func (h *PromHandler) Close() error {
	return h.next.Close()
}
