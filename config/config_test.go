package config

import (
	"testing"
)

func TestString(t *testing.T) {
	c := Config{"PORT": "9090", "EMPTY": ""}

	tests := []struct {
		name string
		key  string
		def  string
		want string
	}{
		{"present key", "PORT", "8080", "9090"},
		{"missing key", "MISSING", "8080", "8080"},
		{"present but empty", "EMPTY", "8080", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.String(tt.key, tt.def); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	var nilConfig Config
	if got := nilConfig.String("ANY", "fallback"); got != "fallback" {
		t.Errorf("nil config String = %q, want fallback", got)
	}
}

func TestInt(t *testing.T) {
	c := Config{"TIMEOUT": "30", "NOT_A_NUMBER": "abc"}

	tests := []struct {
		name string
		key  string
		def  int
		want int
	}{
		{"present integer", "TIMEOUT", 60, 30},
		{"missing key", "MISSING", 60, 60},
		{"unparsable value", "NOT_A_NUMBER", 60, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Int(tt.key, tt.def); got != tt.want {
				t.Errorf("Int(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestSplitEntry(t *testing.T) {
	tests := []struct {
		entry     string
		wantKey   string
		wantValue string
	}{
		{"KEY=value", "KEY", "value"},
		{"KEY=a=b", "KEY", "a=b"},
		{"KEY=", "KEY", ""},
		{"KEY", "KEY", ""},
	}
	for _, tt := range tests {
		key, value := splitEntry(tt.entry)
		if key != tt.wantKey || value != tt.wantValue {
			t.Errorf("splitEntry(%q) = (%q, %q), want (%q, %q)",
				tt.entry, key, value, tt.wantKey, tt.wantValue)
		}
	}
}
