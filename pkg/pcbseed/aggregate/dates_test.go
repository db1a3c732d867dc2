package aggregate

import (
	"testing"
	"time"
)

func TestParseDateHint(t *testing.T) {
	tests := []struct {
		hint     string
		expected string
		ok       bool
	}{
		{"45231", "2023-11-01T00:00:00Z", true},
		{" 45292 ", "2024-01-01T00:00:00Z", true},
		{"20000", "1954-10-03T00:00:00Z", true},
		{"19999", "", false},
		{"70001", "", false},
		{"01/11/2023", "2023-11-01T00:00:00Z", true},
		{"1/2/2024", "2024-02-01T00:00:00Z", true},
		{"2023-11-05", "2023-11-05T00:00:00Z", true},
		{"05-11-2023", "2023-11-05T00:00:00Z", true},
		{"31/02/2024", "", false},
		{"45231.5", "", false},
		{"yesterday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDateHint(tt.hint)
		if ok != tt.ok {
			t.Errorf("ParseDateHint(%q) ok = %v, expected %v", tt.hint, ok, tt.ok)
			continue
		}
		if ok && FormatTimestamp(got) != tt.expected {
			t.Errorf("ParseDateHint(%q) = %s, expected %s", tt.hint, FormatTimestamp(got), tt.expected)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		t        time.Time
		expected string
	}{
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "2025-12-01T00:00:00Z"},
		{time.Date(2025, 12, 1, 8, 30, 15, 250000000, time.UTC), "2025-12-01T08:30:15.25Z"},
		{time.Date(2025, 12, 1, 10, 0, 0, 0, time.FixedZone("IST", 19800)), "2025-12-01T04:30:00Z"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.t); got != tt.expected {
			t.Errorf("FormatTimestamp(%v) = %q, expected %q", tt.t, got, tt.expected)
		}
	}
}
