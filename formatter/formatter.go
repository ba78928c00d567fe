package formatter

import (
	"bytes"

	"github.com/seawatts/nslog/core"
)

// Formatter renders a log entry into the caller's buffer. Handlers
// own and serialize the buffer, so implementations must not retain it
// or the entry past the call.
type Formatter interface {
	Format(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}
