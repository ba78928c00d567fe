package logger

import "github.com/seawatts/nslog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level. Unrecognized strings
// normalize to InfoLevel; a bad severity from a caller must never
// become an error.
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
