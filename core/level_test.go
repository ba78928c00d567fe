package core

import "testing"

func TestLevel_Ordering(t *testing.T) {
	if !(DebugLevel < InfoLevel && InfoLevel < WarnLevel && WarnLevel < ErrorLevel) {
		t.Error("Levels are not totally ordered debug < info < warn < error")
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"debug", DebugLevel, true},
		{"DEBUG", DebugLevel, true},
		{"Info", InfoLevel, true},
		{"warn", WarnLevel, true},
		{"WARNING", WarnLevel, true},
		{"error", ErrorLevel, true},
		{" error ", ErrorLevel, true},
		{"", InfoLevel, false},
		{"verbose", InfoLevel, false},
		{"fatal", InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
