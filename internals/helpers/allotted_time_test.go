package helper

import (
	"testing"
	"time"
)

func TestParseAllottedTime(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"00:30:00", 30 * time.Minute, false},
		{"02:00:00", 2 * time.Hour, false},
		{"01:15:30", time.Hour + 15*time.Minute + 30*time.Second, false},
		{"45:00", 45 * time.Minute, false},
		{" 00:30:00 ", 30 * time.Minute, false},
		{"00:00:00", 0, true},
		{"00:61:00", 0, true},
		{"30", 0, true},
		{"aa:bb:cc", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseAllottedTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAllottedTime(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAllottedTime(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAllottedTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatAllottedTime(t *testing.T) {
	if got := FormatAllottedTime(1800); got != "00:30:00" {
		t.Errorf("FormatAllottedTime(1800) = %q, want 00:30:00", got)
	}
	if got := FormatAllottedTime(7200); got != "02:00:00" {
		t.Errorf("FormatAllottedTime(7200) = %q, want 02:00:00", got)
	}
	if got := FormatAllottedTime(4530); got != "01:15:30" {
		t.Errorf("FormatAllottedTime(4530) = %q, want 01:15:30", got)
	}
	if got := FormatAllottedTime(-5); got != "00:00:00" {
		t.Errorf("FormatAllottedTime(-5) = %q, want 00:00:00", got)
	}
}
