package format

import (
	"testing"
	"time"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-1, "---"},
		{0, "0 /s"},
		{0.4, "0.4 /s"},
		{48.25, "48.2 /s"},
		{1204.26, "1,204.3 /s"},
		{1234567.8, "1,234,567.8 /s"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.in); got != tt.want {
			t.Errorf("FormatRate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-1, "---"},
		{0, "0.00 ms"},
		{7.236, "7.24 ms"},
		{999.994, "999.99 ms"},
		{1000, "1.00 s"},
		{2517, "2.52 s"},
	}
	for _, tt := range tests {
		if got := FormatLatency(tt.in); got != tt.want {
			t.Errorf("FormatLatency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345678, "12,345,678"},
		{-54321, "-54,321"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, "---"},
		{"future", now.Add(time.Minute), "---"},
		{"seconds", now.Add(-12 * time.Second), "12s"},
		{"minutes", now.Add(-4*time.Minute - 30*time.Second), "4m"},
		{"hours", now.Add(-3 * time.Hour), "3h"},
		{"days", now.Add(-49 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAge(tt.t, now); got != tt.want {
				t.Errorf("FormatAge = %q, want %q", got, tt.want)
			}
		})
	}
}
