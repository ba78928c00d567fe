package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/formatter"
)

func newEntry(level core.Level, ns, msg string) *core.Entry {
	return &core.Entry{Time: time.Now(), Level: level, Namespace: ns, Message: msg}
}

func TestConsoleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	if err := h.Handle(newEntry(core.WarnLevel, "app:mod", "careful")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "careful") || !strings.Contains(out, "app:mod") || !strings.Contains(out, "WARN") {
		t.Errorf("unexpected output: %q", out)
	}

	snap := h.Stats()
	if snap.EmittedWarn != 1 || snap.EmittedTotal() != 1 {
		t.Errorf("stats = %+v, want one warn emission", snap)
	}
}

func TestConsoleHandler_DefaultFormatterNoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	if err := h.Handle(newEntry(core.InfoLevel, "a", "plain")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("non-terminal writer got colored output")
	}
}

func TestConsoleHandler_ClosedIsNoop(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	if err := h.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := h.Handle(newEntry(core.InfoLevel, "a", "late")); err != nil {
		t.Errorf("Handle after Close returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("closed handler wrote output: %q", buf.String())
	}
}

func TestConsoleHandler_ConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := h.Handle(newEntry(core.InfoLevel, "par", "msg")); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines, want 400", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "par msg") {
			t.Fatalf("interleaved or truncated line: %q", line)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("sink unavailable") }

func TestConsoleHandler_WriteErrorCounted(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    failingWriter{},
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	if err := h.Handle(newEntry(core.ErrorLevel, "a", "x")); err == nil {
		t.Fatal("Handle swallowed the write error")
	}
	snap := h.Stats()
	if snap.WriteErrors != 1 {
		t.Errorf("WriteErrors = %d, want 1", snap.WriteErrors)
	}
	if snap.EmittedTotal() != 0 {
		t.Errorf("failed write counted as emitted: %+v", snap)
	}
}
