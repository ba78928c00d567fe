package formatter

import (
	"bytes"
	"time"

	"github.com/seawatts/nslog/core"
)

// TextFormatter renders entries as human-readable lines:
//
//	2026-01-02T15:04:05Z [INFO] svc:db message key=value
//
// With Color enabled the level and namespace are ANSI-colored; the
// namespace color is derived from a hash of the namespace so each
// subsystem keeps a stable color across the run.
type TextFormatter struct {
	Config
	// Color enables ANSI escape sequences. Leave false unless the
	// output is a terminal.
	Color bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

var coloredLevelBrackets = [...]string{
	core.DebugLevel: " \x1b[2m[DEBUG]\x1b[0m ",
	core.InfoLevel:  " \x1b[32m[INFO]\x1b[0m ",
	core.WarnLevel:  " \x1b[33m[WARN]\x1b[0m ",
	core.ErrorLevel: " \x1b[31m[ERROR]\x1b[0m ",
}

// namespaceColors is the palette namespaces are hashed into.
var namespaceColors = [...]string{"\x1b[36m", "\x1b[35m", "\x1b[34m", "\x1b[94m", "\x1b[96m", "\x1b[95m"}

// Format writes the formatted entry into buf
func (f *TextFormatter) Format(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp; AppendFormat avoids an intermediate string
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if int(entry.Level) < len(levelBrackets) && entry.Level >= 0 {
		if f.Color {
			buf.WriteString(coloredLevelBrackets[entry.Level])
		} else {
			buf.WriteString(levelBrackets[entry.Level])
		}
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if entry.Namespace != "" {
		if f.Color {
			buf.WriteString(namespaceColors[fnv32(entry.Namespace)%uint32(len(namespaceColors))])
			buf.WriteString(entry.Namespace)
			buf.WriteString("\x1b[0m ")
		} else {
			buf.WriteString(entry.Namespace)
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}

// fnv32 is an inlined FNV-1a, enough to spread namespaces over the
// color palette without importing hash/fnv on the hot path.
func fnv32(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
