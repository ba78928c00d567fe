package config

import (
	"os"

	"github.com/seawatts/nslog/formatter"
	"github.com/seawatts/nslog/handler"
)

// BuildHandler constructs the handler the settings describe. Format
// "json" selects the JSON formatter, anything else text; Output
// "stderr" and "stdout" map to the process streams, any other
// non-empty value is treated as a file path. Falls back to a plain
// stdout console handler when the file cannot be opened, a logging
// config must not fail the host.
func (s Settings) BuildHandler() handler.Handler {
	var f formatter.Formatter
	switch s.Format {
	case "json":
		f = formatter.NewJSONFormatter(formatter.Config{})
	default:
		f = nil // console default: text, color iff terminal
	}

	switch s.Output {
	case "", "stdout":
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout, Formatter: f})
	case "stderr":
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stderr, Formatter: f})
	default:
		fh, err := handler.NewFileHandler(handler.FileConfig{Path: s.Output, Formatter: f})
		if err != nil {
			return handler.NewConsoleHandler(handler.ConsoleConfig{Formatter: f})
		}
		return fh
	}
}
