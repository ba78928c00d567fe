package formatter

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONFormatter_Format(t *testing.T) {
	f := NewJSONFormatter(Config{})
	var buf bytes.Buffer
	f.Format(testEntry(), &buf)

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if m["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", m["level"])
	}
	if m["namespace"] != "svc:db" {
		t.Errorf("namespace = %v, want svc:db", m["namespace"])
	}
	if m["message"] != "connected" {
		t.Errorf("message = %v, want connected", m["message"])
	}
	if m["host"] != "localhost" {
		t.Errorf("host = %v, want localhost", m["host"])
	}
	if m["attempt"] != float64(2) {
		t.Errorf("attempt = %v, want 2", m["attempt"])
	}
}

func TestJSONFormatter_Escaping(t *testing.T) {
	f := NewJSONFormatter(Config{})
	e := testEntry()
	e.Message = "line\nbreak \"quoted\" back\\slash\ttab"
	e.Fields = nil

	var buf bytes.Buffer
	f.Format(e, &buf)

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("escaped output is not valid JSON: %v\n%s", err, buf.String())
	}
	if m["message"] != e.Message {
		t.Errorf("message round-trip = %q, want %q", m["message"], e.Message)
	}
}

func TestJSONFormatter_OmitsEmptyNamespace(t *testing.T) {
	f := NewJSONFormatter(Config{})
	e := testEntry()
	e.Namespace = ""
	e.Fields = nil

	var buf bytes.Buffer
	f.Format(e, &buf)

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, present := m["namespace"]; present {
		t.Error("empty namespace was serialized")
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	e := testEntry()
	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.Format(e, &buf)
	}
}
